package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Collectible = donburi.NewTag().SetName("Collectible")
	Cloud       = donburi.NewTag().SetName("Cloud")
)

// Resolv tags on collision space objects
const (
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvCollectible = "Collectible"
)
