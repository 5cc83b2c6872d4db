package game

import "github.com/aidanfhague/Habere-Dunelm/internal/board"

// ChanceCards builds the Chance deck contents (unshuffled).
func ChanceCards() []*Card {
	return []*Card{
		{Type: CardChance, Text: "Go back 3 spaces",
			Effect: func(e *Engine) []string { return e.MoveRelative(-3, true) }},
		{Type: CardChance, Text: "Assignment overdue - Go to Billy B. Do not pass LOAN DROP, DO NOT COLLECT £200",
			Effect: func(e *Engine) []string { return e.GoToJailNoSalary() }},
		{Type: CardChance, Text: "Extension earnt! Get out of Billy B Free", GetOutOfJail: true,
			Effect: func(e *Engine) []string { return e.AwardGetOutOfJailFree(e.LastDrawnCard()) }},
		{Type: CardChance, Text: "Advance to the nearest Night Club (Station). If unowned, you may buy it. If owned, pay double rent.",
			Effect: func(e *Engine) []string { return e.AdvanceToNearestStationDoubleRent() }},
		{Type: CardChance, Text: "Damp! For each house pay £25, for each hotel pay £100",
			Effect: func(e *Engine) []string { return e.PayPerBuilding(25, 100) }},
		{Type: CardChance, Text: "Penance - Advance to Durham Cathedral. If unowned you may buy it.",
			Effect: func(e *Engine) []string { return e.AdvanceTo(board.DurhamCathedralIndex, true) }},
		{Type: CardChance, Text: "Travel to Klute. If you pass LOAN DROP collect £200",
			Effect: func(e *Engine) []string { return e.AdvanceTo(5, true) }},
		{Type: CardChance, Text: "Advance to University College. If you pass LOAN DROP you may collect £200",
			Effect: func(e *Engine) []string { return e.AdvanceTo(board.UniversityCollegeIndex, true) }},
		{Type: CardChance, Text: "Convert to the Darkside - Advance and spend the night in Hatfield",
			Effect: func(e *Engine) []string { return e.AdvanceTo(board.HatfieldIndex, true) }},
		{Type: CardChance, Text: "Your Friend competes at Fight Night - Donate £15",
			Effect: func(e *Engine) []string { return e.PayBank(15) }},
		{Type: CardChance, Text: "Advance to LOAN DROP",
			Effect: func(e *Engine) []string { return e.AdvanceTo(board.GoIndex, true) }},
		{Type: CardChance, Text: "You land an internship - Receive £200",
			Effect: func(e *Engine) []string { return e.ReceiveBank(200) }},
		{Type: CardChance, Text: "Urinating on the rugby pitch - Pay each player £50 in damages / Lose at DU poker",
			Effect: func(e *Engine) []string { return e.PayEachOtherPlayer(50) }},
		{Type: CardChance, Text: "Advance to Utilities. If unowned, you may buy it. If owned, pay 10x dice.",
			Effect: func(e *Engine) []string { return e.AdvanceToNearestUtilitySpecialRent() }},
		{Type: CardChance, Text: "Your roof falls through and your landlord agrees to compensate you… Collect £150",
			Effect: func(e *Engine) []string { return e.ReceiveBank(150) }},
		{Type: CardChance, Text: "Bonus: Receive £20",
			Effect: func(e *Engine) []string { return e.ReceiveBank(20) }},
	}
}

// CommunityChestCards builds the Community Chest deck contents
// (unshuffled).
func CommunityChestCards() []*Card {
	return []*Card{
		{Type: CardCommunityChest, Text: "Receive a £25 research grant",
			Effect: func(e *Engine) []string { return e.ReceiveBank(25) }},
		{Type: CardCommunityChest, Text: "Extension earnt! Get out of Billy B Free", GetOutOfJail: true,
			Effect: func(e *Engine) []string { return e.AwardGetOutOfJailFree(e.LastDrawnCard()) }},
		{Type: CardCommunityChest, Text: "Win a DU Poker Evening - Collect £10 from every player",
			Effect: func(e *Engine) []string { return e.CollectFromEachOtherPlayer(10) }},
		{Type: CardCommunityChest, Text: "Tickets June Ball - Pay £120",
			Effect: func(e *Engine) []string { return e.PayBank(120) }},
		{Type: CardCommunityChest, Text: "Assignment overdue - Go to Billy B. Do not pass LOAN DROP, DO NOT COLLECT £200",
			Effect: func(e *Engine) []string { return e.GoToJailNoSalary() }},
		{Type: CardCommunityChest, Text: "You book DUCFS tickets. Pay £50",
			Effect: func(e *Engine) []string { return e.PayBank(50) }},
		{Type: CardCommunityChest, Text: "Advance to your LOAN DROP",
			Effect: func(e *Engine) []string { return e.AdvanceTo(board.GoIndex, true) }},
		{Type: CardCommunityChest, Text: "Your pipes burst. Pay for repairs: £40 per house, £115 per hotel",
			Effect: func(e *Engine) []string { return e.PayPerBuilding(40, 115) }},
		{Type: CardCommunityChest, Text: "You make DU - double portions! Receive £100",
			Effect: func(e *Engine) []string { return e.ReceiveBank(100) }},
		{Type: CardCommunityChest, Text: "Clubcard points - Collect £20",
			Effect: func(e *Engine) []string { return e.ReceiveBank(20) }},
		{Type: CardCommunityChest, Text: "Your Thesis is published! Collect £10",
			Effect: func(e *Engine) []string { return e.ReceiveBank(10) }},
		{Type: CardCommunityChest, Text: "Best flirt in college - Collect £50",
			Effect: func(e *Engine) []string { return e.ReceiveBank(50) }},
		{Type: CardCommunityChest, Text: "Holy Grail wants your smooth tunes - Receive £200 from bank",
			Effect: func(e *Engine) []string { return e.ReceiveBank(200) }},
		{Type: CardCommunityChest, Text: "Get caught on Castle roof - Pay £50",
			Effect: func(e *Engine) []string { return e.PayBank(50) }},
		{Type: CardCommunityChest, Text: "You embezzle alumni money - Roll 7+, win £100; else pay £150 and go straight to Billy B",
			Effect: func(e *Engine) []string { return e.GambleThenMaybeJail(7, 100, 150) }},
		{Type: CardCommunityChest, Text: "You get a bunk mate and save on heating - Collect £50",
			Effect: func(e *Engine) []string { return e.ReceiveBank(50) }},
	}
}
