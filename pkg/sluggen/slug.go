// Package sluggen derives the URL identifiers exposed alongside entity ids.
package sluggen

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Make builds a lowercase, hyphenated, ASCII-safe slug from an entity's
// primary key and title. Seeding with the id keeps slugs unique without a
// collision check; callers recompute the slug on every title change so it
// always reflects the latest title.
func Make(id, title string) string {
	return slug.Make(fmt.Sprintf("%s %s", id, title))
}
