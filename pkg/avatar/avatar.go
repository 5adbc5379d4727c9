// Package avatar picks placeholder portrait URLs for newly created records,
// matching the randomuser.me scheme the dashboard renders.
package avatar

import (
	"fmt"
	"math/rand"
)

// URL returns a random placeholder portrait. Gender selects the portrait
// set; anything but "Female" falls back to the men set.
func URL(gender string) string {
	set := "men"
	if gender == "Female" {
		set = "women"
	}
	return fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", set, rand.Intn(100))
}
