package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ball   = donburi.NewTag().SetName("Ball")
	Wall   = donburi.NewTag().SetName("Wall")
	Placer = donburi.NewTag().SetName("Placer")
	Spot   = donburi.NewTag().SetName("Spot")
	Bomb   = donburi.NewTag().SetName("Bomb")
)
