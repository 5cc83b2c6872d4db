package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/aidanfhague/Habere-Dunelm/internal/advisor"
	"github.com/aidanfhague/Habere-Dunelm/internal/config"
	"github.com/aidanfhague/Habere-Dunelm/internal/game"
)

func runSimulate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	seed := cfg.Simulation.Seed
	if cmd.IsSet("seed") {
		seed = cmd.Int64("seed")
	}
	maxTurns := cfg.Simulation.MaxTurns
	if cmd.IsSet("turns") {
		maxTurns = cmd.Int("turns")
	}
	players := cfg.Simulation.Players
	if names := cmd.StringSlice("player"); len(names) > 0 {
		players = names
	}

	gameCfg := game.Config{
		StartingCash: cfg.Game.StartingCash,
		GoSalary:     cfg.Game.GoSalary,
		JailFine:     cfg.Game.JailFine,
		JailMaxTurns: cfg.Game.JailMaxTurns,
	}

	logger.Info("starting simulation",
		zap.String("version", version),
		zap.Strings("players", players),
		zap.Int64("seed", seed),
		zap.Int("max_turns", maxTurns),
	)

	manager := game.NewManager(logger)
	if cmd.Bool("record") {
		manager.EnableRecording(cmd.String("replay-dir"))
	}
	session, err := manager.CreateGame(gameCfg, players, seed)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var tradePolicy advisor.TradePolicy = advisor.SimpleTradePolicy{}
	if cmd.Bool("trades") {
		tradePolicy = advisor.SetHunterTradePolicy{}
	}

	sim := &simulator{
		session:     session,
		engine:      session.Engine(),
		turnPolicy:  advisor.SimpleTurnPolicy{},
		tradePolicy: tradePolicy,
		builder:     advisor.NewBuildAdvisor(),
		maxTurns:    maxTurns,
	}

	sim.run()

	state := session.Engine().State()
	if state.Status() == game.StatusFinished {
		fmt.Printf("WINNER: %s\n", state.Players()[state.WinnerIndex()].Name)
	} else {
		fmt.Println("Turn limit reached with no winner.")
	}

	if rec := manager.Recorder(); rec != nil {
		if err := rec.SaveReplay(session.ID); err != nil {
			logger.Warn("saving replay failed", zap.Error(err))
		}
	}

	manager.RemoveGame(session.ID)
	return nil
}

// simulator drives complete turns: trade responses first, then optional
// trade proposals, then builds, then whatever the turn policy says.
// Actions go through the session so replay recording sees them; the
// engine is read directly for state and advice.
type simulator struct {
	session     *game.Session
	engine      *game.Engine
	turnPolicy  advisor.TurnPolicy
	tradePolicy advisor.TradePolicy
	builder     *advisor.BuildAdvisor
	maxTurns    int
}

func (s *simulator) apply(a game.Action) game.Result { return s.session.Do(a) }

func (s *simulator) run() {
	state := s.engine.State()

	for turn := 1; turn <= s.maxTurns && state.Status() == game.StatusRunning; turn++ {
		fmt.Printf("========== TURN %d ==========\n", turn)
		s.printSnapshot()

		printResult(s.session.StartTurn())

		startingPlayer := state.CurrentPlayerIndex()

		for state.Status() == game.StatusRunning && state.CurrentPlayerIndex() == startingPlayer {
			if s.step() {
				continue
			}
			// Nothing applied; end the turn so the loop always advances.
			printResult(s.apply(game.Simple(game.ActionEndTurn)))
		}
		fmt.Println()
	}
}

// step performs one policy-chosen action. Returns false when the only
// remaining move is END_TURN.
func (s *simulator) step() bool {
	state := s.engine.State()

	if state.Phase() == game.PhaseTradeResponse && state.HasPendingTrade() {
		response := s.tradePolicy.Respond(s.engine, state.PendingTrade())
		printResult(s.apply(response))
		return true
	}

	if phase := state.Phase(); phase == game.PhaseManagement || phase == game.PhaseTurnEnd {
		if offer := s.tradePolicy.MaybePropose(s.engine); offer != nil && !state.HasPendingTrade() {
			printResult(s.apply(game.WithTrade(game.ActionProposeTrade, offer)))
			return true
		}
		if build := s.builder.MaybeBuild(s.engine); build != nil {
			printResult(s.apply(*build))
			return true
		}
	}

	action := s.turnPolicy.ChooseAction(s.engine)
	if action.Type == game.ActionEndTurn {
		return false
	}

	res := s.apply(action)
	printResult(res)

	if !res.OK {
		// A rejected buy falls back to auctioning, which the engine
		// requires before the turn can end.
		if state.Phase() == game.PhaseLandedDecision {
			printResult(s.apply(game.Simple(game.ActionStartAuction)))
			return true
		}
		// A rejected move in debt resolution: mortgage the first
		// eligible tile, or concede via END_TURN (which bankrupts).
		if state.Phase() == game.PhaseMustResolveDebt {
			if tile, found := s.firstMortgageCandidate(); found {
				printResult(s.apply(game.OnTile(game.ActionMortgage, tile)))
				return true
			}
			return false
		}
	}

	if state.Phase() == game.PhaseAuctionActive {
		s.driveAuction()
	}

	return true
}

// driveAuction lets every bidder follow the max-bid heuristic in £10
// steps until the auction resolves.
func (s *simulator) driveAuction() {
	state := s.engine.State()

	for state.Status() == game.StatusRunning && state.Phase() == game.PhaseAuctionActive {
		bidder := state.AuctionCurrentBidder()
		tile := state.AuctionTileIndex()

		maxBid := s.engine.EstimateMaxBid(bidder, tile)
		nextBid := state.AuctionHighBid() + 10

		if nextBid <= maxBid {
			printResult(s.apply(game.Bid(nextBid)))
		} else {
			printResult(s.apply(game.Simple(game.ActionAuctionPass)))
		}
	}
}

func (s *simulator) firstMortgageCandidate() (int, bool) {
	state := s.engine.State()
	owner := state.CurrentPlayerIndex()
	for i := 0; i < 40; i++ {
		if s.engine.DeedAt(i) == nil {
			continue
		}
		ps := state.PropertyAt(i)
		if ps.Owner == owner && !ps.Mortgaged && ps.Buildings == 0 {
			return i, true
		}
	}
	return 0, false
}

func (s *simulator) printSnapshot() {
	state := s.engine.State()
	fmt.Printf("Bank supply: houses=%d, hotels=%d\n", state.HousesRemaining(), state.HotelsRemaining())
	fmt.Printf("-- phase=%s, landed=%d --\n", state.Phase(), state.LandedTileIndex())
	for _, p := range state.Players() {
		jail := "free"
		if p.InJail {
			jail = fmt.Sprintf("JAIL(%d)", p.JailTurnsRemaining)
		}
		status := "OK"
		if p.Bankrupt {
			status = "BANKRUPT"
		}
		fmt.Printf("  %s | £%d | pos %d | %s | %s\n", p.Name, p.Cash, p.Position, jail, status)
	}
}

func printResult(r game.Result) {
	for _, e := range r.Events {
		fmt.Println(e)
	}
	if !r.OK {
		fmt.Println("(action rejected)")
	}
}
