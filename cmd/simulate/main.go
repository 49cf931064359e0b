package main

import (
	"flag"
	"fmt"
	"holdem-server/internal/rng"
	"holdem-server/pkg/poker/texasholdem"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

var (
	hands       = flag.Int("hands", 100, "the number of hands to play")
	seed        = flag.Int64("seed", 0, "a non-zero seed makes the run reproducible")
	tiers       = flag.String("tiers", "easy,medium,hard", "comma separated bot tiers, one per seat")
	simulations = flag.Int("simulations", 500, "monte carlo trials per bot decision")
	verbose     = flag.Bool("v", false, "print every hand")
)

func main() {
	flag.Parse()

	opts := texasholdem.DefaultOptions()
	opts.BotSimulations = *simulations

	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)

	var onHand func(*texasholdem.GameState)
	if *verbose {
		onHand = printHand
	}

	pterm.DefaultSection.Println("Hold'em bot simulation")
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d hands ...", *hands))
	result, err := simulate(logger, opts, strings.Split(*tiers, ","), *hands, rng.New(*seed), onHand)
	if err != nil {
		spinner.Fail(err.Error())
		os.Exit(1)
	}
	spinner.Success(fmt.Sprintf("Played %d hands", result.Hands))

	printResult(result)
}

// result is the outcome of a simulation
type result struct {
	Hands   int
	Players []*playerResult
}

type playerResult struct {
	Seat     int
	Name     string
	Chips    int
	HandsWon int
	Won      int
}

// simulate plays bot-only hands until the count is reached or one stack has every chip
func simulate(logger logrus.FieldLogger, opts texasholdem.Options, tiers []string, hands int, r rng.Generator, onHand func(*texasholdem.GameState)) (*result, error) {
	game, err := texasholdem.NewGame(logger, opts, r)
	if err != nil {
		return nil, err
	}

	if len(tiers) > texasholdem.MaxSeats {
		return nil, fmt.Errorf("at most %d bots can play", texasholdem.MaxSeats)
	}

	for seat, tier := range tiers {
		if _, err := game.AddBot(strings.TrimSpace(tier), seat); err != nil {
			return nil, fmt.Errorf("seat %d: %w", seat, err)
		}
	}

	res := &result{}
	bySeat := make(map[int]*playerResult)
	for _, p := range game.State().Players {
		pr := &playerResult{Seat: p.Seat, Name: p.Name}
		bySeat[p.Seat] = pr
		res.Players = append(res.Players, pr)
	}

	for res.Hands < hands {
		if _, err := game.StartNewHand(); err != nil {
			if err == texasholdem.ErrNotEnoughPlayers {
				break
			}

			return nil, err
		}

		state, err := game.ProcessBotTurns()
		if err != nil {
			return nil, err
		}

		res.Hands++
		for _, w := range state.Winners {
			bySeat[w.Seat].HandsWon++
			bySeat[w.Seat].Won += w.Amount
		}

		if onHand != nil {
			onHand(state)
		}
	}

	for _, p := range game.State().Players {
		bySeat[p.Seat].Chips = p.Chips
	}

	return res, nil
}

func printHand(state *texasholdem.GameState) {
	lines := make([]string, 0, len(state.Winners)+1)
	lines = append(lines, fmt.Sprintf("Board: %s", state.Community.String()))
	for _, w := range state.Winners {
		line := pterm.Sprintf("%s won %d", pterm.LightCyan(w.Name), w.Amount)
		if w.Hand != "" {
			line += " with " + w.Hand
		}

		lines = append(lines, line)
	}

	pterm.DefaultBox.
		WithTitle(pterm.LightYellow(fmt.Sprintf("|HAND %d|", state.HandNumber))).
		WithTitleTopCenter().
		Println(strings.Join(lines, "\n"))
}

func printResult(res *result) {
	data := pterm.TableData{{"Seat", "Bot", "Chips", "Hands won", "Chips won"}}
	for _, p := range res.Players {
		data = append(data, []string{
			strconv.Itoa(p.Seat),
			p.Name,
			strconv.Itoa(p.Chips),
			strconv.Itoa(p.HandsWon),
			strconv.Itoa(p.Won),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}
