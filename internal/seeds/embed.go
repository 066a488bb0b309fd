package seeds

import "embed"

// Seed data is compiled in so the seeder does not depend on the working
// directory it is launched from.
//
//go:embed data/*.yaml
var seedData embed.FS
