package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
)

func runDeeds(ctx context.Context, cmd *cli.Command) error {
	byIndex := deed.UKClassicByIndex()

	indexes := make([]int, 0, len(byIndex))
	for idx := range byIndex {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	fmt.Println("UK Classic-style deed economics (indexed by position from GO)")
	fmt.Println()

	fmt.Println("STREETS:")
	fmt.Printf("%5s %7s %8s %10s %6s %6s %6s %6s %6s %6s\n",
		"Idx", "Price", "Mortgage", "HouseCost", "Site", "H1", "H2", "H3", "H4", "Hotel")
	for _, idx := range indexes {
		if s, isStreet := byIndex[idx].(*deed.Street); isStreet {
			fmt.Printf("%5d %7d %8d %10d %6d %6d %6d %6d %6d %6d\n",
				s.Idx, s.Cost, s.Mortgage, s.HouseCost,
				s.Rents[0], s.Rents[1], s.Rents[2], s.Rents[3], s.Rents[4], s.Rents[5])
		}
	}

	fmt.Println()
	fmt.Println("RAILROADS (rent by number owned):")
	fmt.Printf("%5s %7s %8s %6s %6s %6s %6s\n", "Idx", "Price", "Mortgage", "1RR", "2RR", "3RR", "4RR")
	for _, idx := range indexes {
		if r, isRR := byIndex[idx].(*deed.Railroad); isRR {
			fmt.Printf("%5d %7d %8d %6d %6d %6d %6d\n",
				r.Idx, r.Cost, r.Mortgage,
				r.RentByCount[0], r.RentByCount[1], r.RentByCount[2], r.RentByCount[3])
		}
	}

	fmt.Println()
	fmt.Println("UTILITIES (rent multiplier):")
	fmt.Printf("%5s %7s %8s %10s %10s\n", "Idx", "Price", "Mortgage", "1 util", "2 utils")
	for _, idx := range indexes {
		if u, isUtil := byIndex[idx].(*deed.Utility); isUtil {
			fmt.Printf("%5d %7d %8d %9dx %9dx\n",
				u.Idx, u.Cost, u.Mortgage, u.MultiplierIfOne, u.MultiplierIfTwo)
		}
	}

	return nil
}
