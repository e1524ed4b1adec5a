package gadget

import (
	"fmt"
	"math/rand"
)

// codenamePrefix is the fixed article every codename starts with.
const codenamePrefix = "The "

// maxCodenameAttempts bounds the collision-retry loop in Create.
// With the vocabulary below this is only reachable when the armoury is
// nearly full, at which point ErrCodenameExhausted is the honest answer.
const maxCodenameAttempts = 100

// codenameNouns is the fixed vocabulary for gadget codenames.
// Codenames take the form "The <Noun>".
var codenameNouns = []string{
	"Kraken", "Nightingale", "Mongoose", "Chimera", "Leviathan",
	"Phantom", "Sparrow", "Viper", "Basilisk", "Wraith",
	"Falcon", "Scorpion", "Hydra", "Raven", "Cobra",
	"Specter", "Jackal", "Griffin", "Mantis", "Python",
	"Vulture", "Lynx", "Cicada", "Ocelot", "Tarantula",
	"Barracuda", "Hornet", "Puma", "Gecko", "Anaconda",
	"Osprey", "Wolverine", "Stingray", "Panther", "Locust",
	"Albatross", "Moccasin", "Kestrel", "Piranha", "Badger",
	"Firefly", "Magpie", "Cougar", "Walrus", "Dragonfly",
	"Harrier", "Ferret", "Mamba", "Pelican", "Weasel",
}

// randomCodename picks a random noun from the vocabulary and formats it
// as a codename. Uniqueness is the caller's problem.
func randomCodename() string {
	return codenamePrefix + codenameNouns[rand.Intn(len(codenameNouns))]
}

// VocabularySize returns the number of distinct codenames that can exist.
func VocabularySize() int {
	return len(codenameNouns)
}

// rollSuccessProbability returns a fresh mission success probability in
// the range 1-100 inclusive.
func rollSuccessProbability() int {
	return rand.Intn(100) + 1
}

// assess decorates a gadget with a freshly rolled probability.
func assess(g Gadget) MissionAssessment {
	p := rollSuccessProbability()
	return MissionAssessment{
		Gadget:             g,
		SuccessProbability: fmt.Sprintf("%d%%", p),
		Display:            fmt.Sprintf("%s - %d%% mission success probability", g.Name, p),
	}
}
