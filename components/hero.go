package components

import "github.com/yohamta/donburi"

type HeroData struct {
	SpawnName string
}

var Hero = donburi.NewComponentType[HeroData]()
