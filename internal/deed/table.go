package deed

// UKClassicByIndex returns the UK/London-style board economics keyed by
// board position (0..39). Non-buyable squares have no entry.
func UKClassicByIndex() map[int]Deed {
	m := make(map[int]Deed)

	street := func(idx int, g Group, price, mortgage, houseCost int, rents [6]int) {
		m[idx] = &Street{Idx: idx, Group: g, Cost: price, Mortgage: mortgage, HouseCost: houseCost, Rents: rents}
	}

	// Brown (house cost 50)
	street(1, Brown, 60, 30, 50, [6]int{2, 10, 30, 90, 160, 250})
	street(3, Brown, 60, 30, 50, [6]int{4, 20, 60, 180, 320, 450})

	// Light blue (house cost 50)
	street(6, LightBlue, 100, 50, 50, [6]int{6, 30, 90, 270, 400, 550})
	street(8, LightBlue, 100, 50, 50, [6]int{6, 30, 90, 270, 400, 550})
	street(9, LightBlue, 120, 60, 50, [6]int{8, 40, 100, 300, 450, 600})

	// Pink (house cost 100)
	street(11, Pink, 140, 70, 100, [6]int{10, 50, 150, 450, 625, 750})
	street(13, Pink, 140, 70, 100, [6]int{10, 50, 150, 450, 625, 750})
	street(14, Pink, 160, 80, 100, [6]int{12, 60, 180, 500, 700, 900})

	// Orange (house cost 100)
	street(16, Orange, 180, 90, 100, [6]int{14, 70, 200, 550, 750, 950})
	street(18, Orange, 180, 90, 100, [6]int{14, 70, 200, 550, 750, 950})
	street(19, Orange, 200, 100, 100, [6]int{16, 80, 220, 600, 800, 1000})

	// Red (house cost 150)
	street(21, Red, 220, 110, 150, [6]int{18, 90, 250, 700, 875, 1050})
	street(23, Red, 220, 110, 150, [6]int{18, 90, 250, 700, 875, 1050})
	street(24, Red, 240, 120, 150, [6]int{20, 100, 300, 750, 925, 1100})

	// Yellow (house cost 150)
	street(26, Yellow, 260, 130, 150, [6]int{22, 110, 330, 800, 975, 1150})
	street(27, Yellow, 260, 130, 150, [6]int{22, 110, 330, 800, 975, 1150})
	street(29, Yellow, 280, 140, 150, [6]int{24, 120, 360, 850, 1025, 1200})

	// Green (house cost 200)
	street(31, Green, 300, 150, 200, [6]int{26, 130, 390, 900, 1100, 1275})
	street(32, Green, 300, 150, 200, [6]int{26, 130, 390, 900, 1100, 1275})
	street(34, Green, 320, 160, 200, [6]int{28, 150, 450, 1000, 1200, 1400})

	// Dark blue (house cost 200)
	street(37, DarkBlue, 350, 175, 200, [6]int{35, 175, 500, 1100, 1300, 1500})
	street(39, DarkBlue, 400, 200, 200, [6]int{50, 200, 600, 1400, 1700, 2000})

	// Railroads / stations: price 200, mortgage 100, rent 25/50/100/200
	rrRents := [4]int{25, 50, 100, 200}
	for _, idx := range []int{5, 15, 25, 35} {
		m[idx] = &Railroad{Idx: idx, Cost: 200, Mortgage: 100, RentByCount: rrRents}
	}

	// Utilities: price 150, mortgage 75, rent dice x4 or dice x10
	for _, idx := range []int{12, 28} {
		m[idx] = &Utility{Idx: idx, Cost: 150, Mortgage: 75, MultiplierIfOne: 4, MultiplierIfTwo: 10}
	}

	return m
}

// StreetsInGroup filters a deed table down to the streets of one colour
// group, in ascending index order.
func StreetsInGroup(deeds map[int]Deed, g Group) []*Street {
	var out []*Street
	for idx := 0; idx < 40; idx++ {
		if s, ok := deeds[idx].(*Street); ok && s.Group == g {
			out = append(out, s)
		}
	}
	return out
}
