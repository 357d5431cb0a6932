// Package wordoracle produces the scrambled rendering and the hint for a
// submitted word. It is pure and stateless; word selection itself happens on
// the client side, the server only ever sees the chosen word.
package wordoracle

import (
	"fmt"
	"math/rand"
	"strings"
)

type Oracle struct{}

func New() *Oracle {
	return &Oracle{}
}

// Scramble returns a random permutation of word guaranteed to differ from the
// input, unless the word has fewer than two distinct runes (in which case no
// differing permutation exists).
func (o *Oracle) Scramble(word string) string {
	runes := []rune(word)
	if len(runes) < 2 || allSame(runes) {
		return word
	}
	for {
		shuffled := make([]rune, len(runes))
		copy(shuffled, runes)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if s := string(shuffled); s != word {
			return s
		}
	}
}

// Hint returns the curated hint for known words, falling back to a
// length-based hint for everything else.
func (o *Oracle) Hint(word string) string {
	if hint, ok := hints[strings.ToLower(word)]; ok {
		return hint
	}
	return fmt.Sprintf("A word with %d letters", len([]rune(word)))
}

func allSame(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

var hints = map[string]string{
	// Technology
	"javascript": "A popular programming language for web development",
	"python":     "A snake-named programming language",
	"algorithm":  "A step-by-step procedure for solving problems",
	"database":   "Organized collection of data",
	"frontend":   "The user-facing part of an application",
	"backend":    "Server-side of an application",
	"framework":  "A platform for developing software applications",
	"responsive": "Design that adapts to different screen sizes",

	// Animals
	"elephant": "Largest land mammal with a trunk",
	"giraffe":  "Tallest mammal with a long neck",
	"penguin":  "Flightless bird that lives in cold climates",
	"dolphin":  "Intelligent marine mammal",
	"kangaroo": "Marsupial that hops and has a pouch",
	"cheetah":  "Fastest land animal",

	// Food
	"pizza":     "Italian dish with cheese and toppings",
	"hamburger": "Sandwich with a meat patty",
	"chocolate": "Sweet treat made from cocoa",
	"avocado":   "Green fruit rich in healthy fats",
	"spaghetti": "Long thin pasta",

	// Nature
	"mountain":  "Large natural elevation of earth",
	"ocean":     "Large body of salt water",
	"rainbow":   "Colorful arc in the sky after rain",
	"waterfall": "Water falling from a height",
	"volcano":   "Mountain that can erupt lava",
}
