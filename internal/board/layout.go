package board

// Well-known destinations used by card effects.
const (
	GoIndex                = 0  // LOAN DROP / Matriculation
	JailIndex              = 10 // Billy B
	HatfieldIndex          = 34
	UniversityCollegeIndex = 37
	DurhamCathedralIndex   = 39
)

// Stations ("Night Clubs") and utilities, in board order.
var (
	Stations  = []int{5, 15, 25, 35}
	Utilities = []int{12, 28}
)

// Standard returns the Durham-themed classic layout. Names are flavour;
// only the types matter to the rules.
func Standard() *Board {
	tiles := []Tile{
		{0, "Matriculation/LOAN DROP", TypeGo},
		{1, "Student Union", TypeProperty},
		{2, "Afternoon in the Swan", TypeCommunityChest},
		{3, "Elvet Riverside", TypeProperty},
		{4, "Income Tax", TypeTax},
		{5, "Klute", TypeRailroad},
		{6, "Maiden Castle", TypeProperty},
		{7, "Chance", TypeChance},
		{8, "Hild Bede", TypeProperty},
		{9, "Business", TypeProperty},
		{10, "Billy B / Small Island Coffee", TypeJail},
		{11, "St. Aidan's", TypeProperty},
		{12, "Lumley Challenge", TypeUtility},
		{13, "John Snow", TypeProperty},
		{14, "South", TypeProperty},
		{15, "Fabio's", TypeRailroad},
		{16, "Stevenson", TypeProperty},
		{17, "Hustings", TypeCommunityChest},
		{18, "Josephine Butler", TypeProperty},
		{19, "Botanic Gardens", TypeProperty},
		{20, "Upper Mountjoy", TypeFreeParking},
		{21, "Van Mildert", TypeProperty},
		{22, "Chance", TypeChance},
		{23, "Collingwood", TypeProperty},
		{24, "Grey", TypeProperty},
		{25, "Osbournes", TypeRailroad},
		{26, "TLC", TypeProperty},
		{27, "St. Mary's", TypeProperty},
		{28, "Mary's Challenge", TypeUtility},
		{29, "St. Cuthbert's", TypeProperty},
		{30, "Pull an All-Nighter", TypeGoToJail},
		{31, "St. Chad's", TypeProperty},
		{32, "St. John's", TypeProperty},
		{33, "Hustings", TypeCommunityChest},
		{34, "Hatfield", TypeProperty},
		{35, "Jimmy Allen's", TypeRailroad},
		{36, "Chance", TypeChance},
		{37, "University College", TypeProperty},
		{38, "Super Tax", TypeTax},
		{39, "Durham Cathedral", TypeProperty},
	}
	b, err := New(tiles)
	if err != nil {
		// The table above is a compile-time constant of exactly Size entries.
		panic(err)
	}
	return b
}

// NearestForward picks the closest candidate strictly ahead of start,
// treating distance 0 as a full lap (the "next" one, not the current).
func NearestForward(start int, candidates []int) int {
	best := candidates[0]
	bestDist := Size + 1
	for _, c := range candidates {
		dist := ((c - start) % Size + Size) % Size
		if dist == 0 {
			dist = Size
		}
		if dist < bestDist {
			bestDist = dist
			best = c
		}
	}
	return best
}
