package main

import (
	"graphics.gd/classdb"
	"graphics.gd/startup"
	"the.quetzal.community/quadsphere/internal"
)

func main() {
	classdb.Register[internal.PlanetMesh]()
	startup.Scene()
}
