package components

import (
	"github.com/automoto/bombspot/shared/leveldata"
	"github.com/yohamta/donburi"
)

type BallData struct {
	Radius float64
	Hops   int
	Ticks  int // ticks since spawn, drives the altitude log
	Spawn  leveldata.SpawnPoint
}

var Ball = donburi.NewComponentType[BallData]()
