/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package impostor

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"sync"
	"testing"
)

// mustState fails the test on a transition error. Call it as
// mustState(t)(s.RevealCard()).
func mustState(t *testing.T) func(State, error) State {
	t.Helper()

	return func(s State, err error) State {
		t.Helper()

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		return s
	}
}

func playingSession(t *testing.T, picks ...int) *Session {
	t.Helper()

	s := NewSession(Default(), &scriptedRand{picks: picks})
	mustState(t)(s.StartGame(3, []Category{Lugares}, ModeBasic))
	mustState(t)(s.SubmitNames([]string{"A", "B", "C"}))

	return s
}

func TestInitialState(t *testing.T) {
	s := NewSession(Default(), &scriptedRand{}).State()

	if s.Phase != PhaseSetup {
		t.Errorf("phase = %s, want setup", s.Phase)
	}
	if !slices.Equal(s.SelectedCategories, Default().Keys()) {
		t.Errorf("categories = %v, want all", s.SelectedCategories)
	}
	if s.GameMode != ModeBasic {
		t.Errorf("mode = %s, want basic", s.GameMode)
	}
	if s.ImpostorIndex != NoImpostor {
		t.Errorf("impostor = %d, want %d", s.ImpostorIndex, NoImpostor)
	}
	if s.SecretWord != "" || s.ImpostorClue != "" || len(s.PlayerNames) != 0 {
		t.Errorf("initial state carries round data: %+v", s)
	}
}

func TestStartGame(t *testing.T) {
	s := NewSession(Default(), &scriptedRand{})

	got := mustState(t)(s.StartGame(4, []Category{Comida, Objetos}, ModeWithClues))

	want := State{
		Phase:              PhaseNaming,
		PlayerCount:        4,
		PlayerNames:        []string{},
		SelectedCategories: []Category{Comida, Objetos},
		ImpostorIndex:      NoImpostor,
		GameMode:           ModeWithClues,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StartGame =\n%+v\nwant\n%+v", got, want)
	}
}

func TestScenarioFirstRound(t *testing.T) {
	s := playingSession(t, 0, 1)
	st := s.State()

	if st.Phase != PhasePlaying {
		t.Fatalf("phase = %s, want playing", st.Phase)
	}
	if !slices.Equal(st.PlayerNames, []string{"A", "B", "C"}) {
		t.Errorf("names = %v", st.PlayerNames)
	}
	if st.ImpostorIndex != 1 {
		t.Errorf("impostor = %d, want 1", st.ImpostorIndex)
	}
	if want := Default().WordsFor([]Category{Lugares})[0]; st.SecretWord != want {
		t.Errorf("secret word = %q, want %q", st.SecretWord, want)
	}
	if st.ImpostorClue != "" {
		t.Errorf("basic mode clue = %q", st.ImpostorClue)
	}
	if st.CurrentPlayerIndex != 0 || st.CardRevealed {
		t.Errorf("round did not start at the first, unrevealed card: %+v", st)
	}
}

func TestScenarioAdvanceToEnd(t *testing.T) {
	s := playingSession(t, 0, 1)

	for want := 1; want <= 2; want++ {
		mustState(t)(s.RevealCard())

		st := mustState(t)(s.AdvancePlayer())
		if st.CurrentPlayerIndex != want {
			t.Fatalf("current player = %d, want %d", st.CurrentPlayerIndex, want)
		}
		if st.CardRevealed {
			t.Fatal("advance did not hide the card")
		}
		if st.Phase != PhasePlaying {
			t.Fatalf("phase = %s, want playing", st.Phase)
		}
	}

	st := mustState(t)(s.AdvancePlayer())
	if st.Phase != PhaseEnded {
		t.Fatalf("phase = %s, want ended", st.Phase)
	}
	if st.CurrentPlayerIndex != 2 {
		t.Errorf("ending changed the player index to %d", st.CurrentPlayerIndex)
	}
}

func TestScenarioEmptyCategories(t *testing.T) {
	s := NewSession(Default(), &scriptedRand{})
	before := s.State()

	st, err := s.StartGame(4, nil, ModeBasic)
	if !errors.Is(err, ErrNoCategories) {
		t.Fatalf("err = %v, want ErrNoCategories", err)
	}
	if !reflect.DeepEqual(st, before) || !reflect.DeepEqual(s.State(), before) {
		t.Error("failed start changed the state")
	}
}

func TestScenarioClueForImpostor(t *testing.T) {
	c := testCatalog(t)
	s := NewSession(c, &scriptedRand{picks: []int{0, 2}})

	mustState(t)(s.StartGame(3, []Category{"objetos"}, ModeWithClues))
	st := mustState(t)(s.SubmitNames([]string{"A", "B", "C"}))

	if st.SecretWord != "X" || st.ImpostorClue != "Y" {
		t.Fatalf("word %q clue %q, want X / Y", st.SecretWord, st.ImpostorClue)
	}

	mustState(t)(s.AdvancePlayer())
	mustState(t)(s.AdvancePlayer())
	st = mustState(t)(s.RevealCard())

	card, ok := st.Card()
	if !ok {
		t.Fatal("revealed card not available")
	}
	if card.Role != RoleImpostor || card.Clue != "Y" || card.Word != "" || card.Player != "C" {
		t.Errorf("impostor card = %+v", card)
	}
}

func TestStartGameValidation(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		mode       Mode
		err        error
	}{
		{"no categories", []Category{}, ModeBasic, ErrNoCategories},
		{"unknown category", []Category{Lugares, "planetas"}, ModeBasic, ErrUnknownCategory},
		{"unknown mode", []Category{Lugares}, "hard", ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(Default(), &scriptedRand{})
			before := s.State()

			if _, err := s.StartGame(3, tt.categories, tt.mode); !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if !reflect.DeepEqual(s.State(), before) {
				t.Error("failed start changed the state")
			}
		})
	}
}

func TestSubmitNamesCountMismatch(t *testing.T) {
	s := NewSession(Default(), &scriptedRand{})
	mustState(t)(s.StartGame(4, []Category{Comida}, ModeBasic))
	before := s.State()

	for _, names := range [][]string{nil, {"A", "B", "C"}, {"A", "B", "C", "D", "E"}} {
		if _, err := s.SubmitNames(names); !errors.Is(err, ErrNameCount) {
			t.Errorf("SubmitNames(%v) err = %v, want ErrNameCount", names, err)
		}
	}

	if !reflect.DeepEqual(s.State(), before) {
		t.Error("failed submit changed the state")
	}
}

func TestRevealCardIdempotent(t *testing.T) {
	s := playingSession(t, 3, 2)

	once := mustState(t)(s.RevealCard())
	twice := mustState(t)(s.RevealCard())

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second reveal changed state:\n%+v\n%+v", once, twice)
	}
}

func TestOutOfPhaseTransitions(t *testing.T) {
	setup := func(t *testing.T) *Session { return NewSession(Default(), &scriptedRand{}) }
	naming := func(t *testing.T) *Session {
		s := setup(t)
		mustState(t)(s.StartGame(3, []Category{Lugares}, ModeBasic))
		return s
	}
	playing := func(t *testing.T) *Session { return playingSession(t) }

	tests := []struct {
		name  string
		from  func(*testing.T) *Session
		apply func(*Session) (State, error)
	}{
		{"advance in setup", setup, (*Session).AdvancePlayer},
		{"reveal in setup", setup, (*Session).RevealCard},
		{"submit in setup", setup, func(s *Session) (State, error) { return s.SubmitNames([]string{"A", "B", "C"}) }},
		{"restart in setup", setup, (*Session).RestartSameLineup},
		{"start in naming", naming, func(s *Session) (State, error) { return s.StartGame(3, []Category{Comida}, ModeBasic) }},
		{"reveal in naming", naming, (*Session).RevealCard},
		{"new players in naming", naming, (*Session).RestartWithNewPlayers},
		{"new players in playing", playing, (*Session).RestartWithNewPlayers},
		{"new categories in playing", playing, func(s *Session) (State, error) { return s.RestartWithNewCategories([]Category{Comida}) }},
		{"submit in playing", playing, func(s *Session) (State, error) { return s.SubmitNames([]string{"A", "B", "C"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.from(t)
			before := s.State()

			_, err := tt.apply(s)
			if !errors.Is(err, ErrWrongPhase) {
				t.Fatalf("err = %v, want ErrWrongPhase", err)
			}

			var pe *PhaseError
			if !errors.As(err, &pe) || pe.Phase != before.Phase {
				t.Errorf("err = %#v, want PhaseError in %s", err, before.Phase)
			}

			if !reflect.DeepEqual(s.State(), before) {
				t.Error("rejected transition changed the state")
			}
		})
	}
}

func endedSession(t *testing.T, mode Mode, picks ...int) *Session {
	t.Helper()

	s := NewSession(Default(), &scriptedRand{picks: picks})
	mustState(t)(s.StartGame(3, []Category{Animales, Comida}, mode))
	mustState(t)(s.SubmitNames([]string{"Ana", "Beto", "Caro"}))
	for range 3 {
		mustState(t)(s.AdvancePlayer())
	}

	if st := s.State(); st.Phase != PhaseEnded {
		t.Fatalf("phase = %s, want ended", st.Phase)
	}

	return s
}

func TestRestartSameLineup(t *testing.T) {
	s := endedSession(t, ModeWithClues, 0, 0, 5, 2)

	st := mustState(t)(s.RestartSameLineup())

	if st.Phase != PhasePlaying || st.CurrentPlayerIndex != 0 || st.CardRevealed {
		t.Fatalf("restart did not begin a fresh round: %+v", st)
	}
	if !slices.Equal(st.PlayerNames, []string{"Ana", "Beto", "Caro"}) {
		t.Errorf("names = %v", st.PlayerNames)
	}
	if !slices.Equal(st.SelectedCategories, []Category{Animales, Comida}) {
		t.Errorf("categories = %v", st.SelectedCategories)
	}

	pool := Default().WordsFor([]Category{Animales, Comida})
	if st.SecretWord != pool[5] || st.ImpostorIndex != 2 {
		t.Errorf("word %q impostor %d, want %q / 2", st.SecretWord, st.ImpostorIndex, pool[5])
	}
	if st.GameMode != ModeWithClues || st.ImpostorClue == "" {
		t.Errorf("mode %s clue %q, want clues kept", st.GameMode, st.ImpostorClue)
	}
}

func TestRestartSameLineupFromPlaying(t *testing.T) {
	s := playingSession(t, 0, 0)
	mustState(t)(s.RevealCard())
	mustState(t)(s.AdvancePlayer())

	st := mustState(t)(s.RestartSameLineup())
	if st.Phase != PhasePlaying || st.CurrentPlayerIndex != 0 {
		t.Errorf("restart from playing = %+v", st)
	}
}

func TestRestartSameLineupWithoutRosterFallsBack(t *testing.T) {
	d := Dealer{Catalog: Default(), Rand: &scriptedRand{}}
	s := State{Phase: PhaseEnded, PlayerNames: []string{}, SelectedCategories: []Category{Comida}, GameMode: ModeWithClues}

	st, err := s.RestartSameLineup(d)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(st, InitialState(Default())) {
		t.Errorf("fallback = %+v, want initial state", st)
	}
}

func TestRestartWithNewPlayers(t *testing.T) {
	s := endedSession(t, ModeWithClues, 4, 1)

	st := mustState(t)(s.RestartWithNewPlayers())
	if !reflect.DeepEqual(st, InitialState(Default())) {
		t.Errorf("RestartWithNewPlayers = %+v, want initial state", st)
	}
}

func TestRestartWithNewCategories(t *testing.T) {
	s := endedSession(t, ModeBasic, 0, 0, 0, 1)

	before := s.State()
	if _, err := s.RestartWithNewCategories(nil); !errors.Is(err, ErrNoCategories) {
		t.Fatalf("err = %v, want ErrNoCategories", err)
	}
	if !reflect.DeepEqual(s.State(), before) {
		t.Fatal("failed restart changed the state")
	}

	st := mustState(t)(s.RestartWithNewCategories([]Category{Cantantes}))

	if st.Phase != PhasePlaying {
		t.Fatalf("phase = %s", st.Phase)
	}
	if !slices.Equal(st.SelectedCategories, []Category{Cantantes}) {
		t.Errorf("categories = %v", st.SelectedCategories)
	}
	if !slices.Equal(st.PlayerNames, before.PlayerNames) {
		t.Errorf("names = %v, want %v", st.PlayerNames, before.PlayerNames)
	}
	if st.SecretWord != Default().WordsFor([]Category{Cantantes})[0] || st.ImpostorIndex != 1 {
		t.Errorf("word %q impostor %d", st.SecretWord, st.ImpostorIndex)
	}
	if st.ImpostorClue != "" {
		t.Errorf("basic mode clue = %q", st.ImpostorClue)
	}
}

func TestStateIsNotAliased(t *testing.T) {
	s := playingSession(t)

	st := s.State()
	st.PlayerNames[0] = "changed"
	st.SelectedCategories[0] = "changed"

	again := s.State()
	if again.PlayerNames[0] != "A" || again.SelectedCategories[0] != Lugares {
		t.Errorf("caller mutation leaked into the session: %+v", again)
	}

	names := []string{"X", "Y", "Z"}
	n := NewSession(Default(), &scriptedRand{})
	mustState(t)(n.StartGame(3, []Category{Lugares}, ModeBasic))
	mustState(t)(n.SubmitNames(names))
	names[0] = "changed"

	if got := n.State().PlayerNames[0]; got != "X" {
		t.Errorf("submitted slice is aliased: %q", got)
	}
}

func TestCardView(t *testing.T) {
	s := playingSession(t, 0, 1)

	if _, ok := s.State().Card(); ok {
		t.Error("card visible before reveal")
	}

	st := mustState(t)(s.RevealCard())
	card, ok := st.Card()
	if !ok {
		t.Fatal("card hidden after reveal")
	}
	if card.Role != RoleCrew || card.Word != st.SecretWord || card.Clue != "" || card.Player != "A" {
		t.Errorf("crew card = %+v", card)
	}

	mustState(t)(s.AdvancePlayer())
	st = mustState(t)(s.RevealCard())
	if !st.IsImpostorTurn() {
		t.Fatal("expected the impostor's turn")
	}

	card, _ = st.Card()
	if card.Role != RoleImpostor || card.Word != "" || card.Clue != "" {
		t.Errorf("basic impostor card = %+v", card)
	}
}

func TestNormalizeNames(t *testing.T) {
	got := NormalizeNames([]string{"  Ana ", "", "\t", "Caro"})
	want := []string{"Ana", "Jugador 2", "Jugador 3", "Caro"}

	if !slices.Equal(got, want) {
		t.Errorf("NormalizeNames = %v, want %v", got, want)
	}

	if got := DefaultNames(3); !slices.Equal(got, []string{"Jugador 1", "Jugador 2", "Jugador 3"}) {
		t.Errorf("DefaultNames = %v", got)
	}
}

func TestValidatePlayerCount(t *testing.T) {
	for n := 0; n <= MaxPlayers+2; n++ {
		err := ValidatePlayerCount(n)
		if valid := n >= MinPlayers && n <= MaxPlayers; valid != (err == nil) {
			t.Errorf("ValidatePlayerCount(%d) = %v", n, err)
		}
	}
}

func checkInvariants(t *testing.T, step int, st State) {
	t.Helper()

	switch st.Phase {
	case PhasePlaying, PhaseEnded:
		if st.ImpostorIndex < 0 || st.ImpostorIndex >= st.PlayerCount {
			t.Fatalf("step %d: impostor %d outside [0, %d)", step, st.ImpostorIndex, st.PlayerCount)
		}
		if st.CurrentPlayerIndex < 0 || st.CurrentPlayerIndex >= st.PlayerCount {
			t.Fatalf("step %d: current player %d outside [0, %d)", step, st.CurrentPlayerIndex, st.PlayerCount)
		}
		if len(st.SelectedCategories) == 0 {
			t.Fatalf("step %d: no categories in %s", step, st.Phase)
		}
		if len(st.PlayerNames) != st.PlayerCount {
			t.Fatalf("step %d: %d names for %d players", step, len(st.PlayerNames), st.PlayerCount)
		}
		if st.SecretWord == "" {
			t.Fatalf("step %d: no secret word in %s", step, st.Phase)
		}
		if (st.GameMode == ModeWithClues) != (st.ImpostorClue != "") {
			t.Fatalf("step %d: mode %s with clue %q", step, st.GameMode, st.ImpostorClue)
		}
	case PhaseSetup, PhaseNaming:
		if st.SecretWord != "" || st.ImpostorClue != "" || st.ImpostorIndex != NoImpostor {
			t.Fatalf("step %d: round data in %s: %+v", step, st.Phase, st)
		}
	default:
		t.Fatalf("step %d: unknown phase %q", step, st.Phase)
	}
}

func TestRandomTransitionSequences(t *testing.T) {
	rng := rand.New(rand.NewPCG(2025, 11))
	keys := Default().Keys()

	randomCategories := func() []Category {
		n := rng.IntN(len(keys) + 1)
		out := make([]Category, 0, n)
		for range n {
			out = append(out, keys[rng.IntN(len(keys))])
		}
		return out
	}

	for game := range 200 {
		s := NewSession(Default(), rand.New(rand.NewPCG(uint64(game), 99)))

		for step := range 100 {
			before := s.State()

			var (
				st  State
				err error
			)

			switch rng.IntN(7) {
			case 0:
				mode := ModeBasic
				if rng.IntN(2) == 1 {
					mode = ModeWithClues
				}
				st, err = s.StartGame(MinPlayers+rng.IntN(MaxPlayers-MinPlayers+1), randomCategories(), mode)
			case 1:
				n := before.PlayerCount
				if rng.IntN(4) == 0 {
					n++
				}
				st, err = s.SubmitNames(DefaultNames(n))
			case 2:
				st, err = s.RevealCard()
			case 3:
				st, err = s.AdvancePlayer()
			case 4:
				st, err = s.RestartSameLineup()
			case 5:
				st, err = s.RestartWithNewPlayers()
			case 6:
				st, err = s.RestartWithNewCategories(randomCategories())
			}

			if err != nil {
				if !reflect.DeepEqual(st, before) || !reflect.DeepEqual(s.State(), before) {
					t.Fatalf("game %d step %d: failed transition changed state: %v", game, step, err)
				}
			}

			checkInvariants(t, step, s.State())
		}
	}
}

func TestSessionConcurrentUse(t *testing.T) {
	s := NewSession(Default(), rand.New(rand.NewPCG(5, 5)))
	mustState(t)(s.StartGame(MaxPlayers, Default().Keys(), ModeWithClues))
	mustState(t)(s.SubmitNames(DefaultNames(MaxPlayers)))

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				_, _ = s.RevealCard()
				_, _ = s.AdvancePlayer()
				_, _ = s.RestartSameLineup()
				_ = s.State()
			}
		})
	}
	wg.Wait()

	checkInvariants(t, 0, s.State())
}

func TestSessionFullRoundWithDefaultCatalog(t *testing.T) {
	// Teléfono is the first objetos word; seat 2 is the impostor.
	s := NewSession(Default(), &scriptedRand{picks: []int{0, 2}})
	setup := s.State()

	if _, err := s.AdvancePlayer(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("advance in setup: err = %v, want ErrWrongPhase", err)
	}
	if _, err := s.StartGame(3, nil, ModeWithClues); !errors.Is(err, ErrNoCategories) {
		t.Fatalf("start without categories: err = %v, want ErrNoCategories", err)
	}
	if !reflect.DeepEqual(s.State(), setup) {
		t.Fatalf("rejected transitions changed state: %+v", s.State())
	}

	mustState(t)(s.StartGame(3, []Category{Objetos}, ModeWithClues))
	st := mustState(t)(s.SubmitNames([]string{"A", "B", "C"}))

	if st.SecretWord != "Teléfono" || st.ImpostorIndex != 2 || st.ImpostorClue != "Voz" {
		t.Fatalf("round = %q/%d/%q, want Teléfono/2/Voz", st.SecretWord, st.ImpostorIndex, st.ImpostorClue)
	}

	card, _ := mustState(t)(s.RevealCard()).Card()
	if card.Role != RoleCrew || card.Word != "Teléfono" {
		t.Errorf("first card = %+v", card)
	}

	mustState(t)(s.AdvancePlayer())
	mustState(t)(s.AdvancePlayer())

	card, _ = mustState(t)(s.RevealCard()).Card()
	if card.Role != RoleImpostor || card.Clue != "Voz" || card.Word != "" {
		t.Errorf("impostor card = %+v", card)
	}

	if st = mustState(t)(s.AdvancePlayer()); st.Phase != PhaseEnded || st.CurrentPlayerIndex != 2 {
		t.Errorf("after last player: phase %s index %d", st.Phase, st.CurrentPlayerIndex)
	}
}
