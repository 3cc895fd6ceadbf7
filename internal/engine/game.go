package engine

import (
	"errors"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrInvalidAction  = errors.New("invalid action")
	ErrPlayerNotFound = errors.New("player not found")
	ErrWrongPhase     = errors.New("wrong phase for this action")
	ErrRankOutOfRange = errors.New("rank out of range")
	ErrInvalidRow     = errors.New("invalid row number")
	ErrCardNotInHand  = errors.New("card not in hand")
	ErrCardNotChosen  = errors.New("card not in chosen cards")
)

// Game holds the entire game state.
type Game struct {
	Players []*Player  `json:"players"`
	Deck    *Deck      `json:"-"`
	Config  GameConfig `json:"-"`

	Phase GamePhase `json:"phase"`
	Round int       `json:"round"`

	Choosing     *ChoosingState `json:"choosing,omitempty"`
	CurrentActor int            `json:"current_actor"` // player in the action phase

	Scores []ScoreEntry `json:"scores,omitempty"`
}

// NewGame creates a new game with given players, deck and config.
func NewGame(players []*Player, deck *Deck, config GameConfig) *Game {
	return &Game{
		Players: players,
		Deck:    deck,
		Config:  config,
		Phase:   PhaseSetup,
	}
}

// StartGame deals and sorts the hands and begins the first round.
func (g *Game) StartGame() []Event {
	g.Deck.Deal(g.Players, g.Config.HandSize)
	for _, p := range g.Players {
		p.Hand.SortAscending()
	}
	return g.startRound()
}

func (g *Game) startRound() []Event {
	if !g.playersHaveCards() {
		return g.endGame(nil)
	}
	g.Round++
	g.CurrentActor = 0
	g.Choosing = SetupChoosing(g.Players, g.Config.ChoosePerTurn)
	g.Phase = PhaseChoosing

	events := []Event{
		{Type: EventRoundStart, Data: map[string]interface{}{"round": g.Round}},
		{Type: EventPhaseChange, Data: map[string]interface{}{
			"phase": PhaseChoosing.String(),
		}},
	}
	if g.Choosing.IsDone() {
		events = append(events, g.ExchangeHands())
		events = append(events, g.beginActionPhase()...)
	}
	return events
}

// playersHaveCards is the loop condition: every player must still hold a
// hand or chosen card.
func (g *Game) playersHaveCards() bool {
	for _, p := range g.Players {
		if !p.HasCards() {
			return false
		}
	}
	return len(g.Players) > 0
}

func (g *Game) endRound() []Event {
	g.Phase = PhaseRoundEnd
	events := []Event{{Type: EventRoundEnd, Data: map[string]interface{}{"round": g.Round}}}
	if g.playersHaveCards() {
		return append(events, g.startRound()...)
	}
	return g.endGame(events)
}

func (g *Game) endGame(events []Event) []Event {
	g.Phase = PhaseGameOver
	g.Choosing = nil
	g.CurrentActor = 0
	g.Scores = g.CalculateScores()
	events = append(events, Event{
		Type: EventGameOver,
		Data: map[string]interface{}{"scores": g.Scores},
	})
	events = append(events, Event{
		Type: EventPhaseChange,
		Data: map[string]interface{}{"phase": PhaseGameOver.String()},
	})
	return events
}

// CurrentPlayerID returns whoever the game is waiting on, or 0.
func (g *Game) CurrentPlayerID() int {
	switch g.Phase {
	case PhaseChoosing:
		if g.Choosing != nil {
			return g.Choosing.CurrentPickerID()
		}
	case PhaseAction:
		return g.CurrentActor
	}
	return 0
}

// Apply is the single entry point for player actions.
func (g *Game) Apply(playerID int, action Action) ([]Event, error) {
	switch action.Type {
	case ActionChoose:
		return g.applyChoose(playerID, action)
	case ActionPlace:
		return g.applyPlace(playerID, action)
	case ActionDiscard:
		return g.applyDiscard(playerID, action)
	default:
		return nil, ErrInvalidAction
	}
}

func (g *Game) checkRank(rank int) error {
	if rank < 1 || rank > g.Config.MaxRank {
		return ErrRankOutOfRange
	}
	return nil
}

func (g *Game) applyChoose(playerID int, action Action) ([]Event, error) {
	if g.Phase != PhaseChoosing {
		return nil, ErrWrongPhase
	}
	p := g.GetPlayer(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	if err := g.checkRank(action.Rank); err != nil {
		return nil, err
	}
	card, err := g.Choosing.Pick(p, action.Rank)
	if err != nil {
		return nil, err
	}

	events := []Event{
		{Type: EventCardChosen, Player: playerID, Data: map[string]interface{}{
			"card": card.String(),
		}},
	}
	if g.Choosing.IsDone() {
		events = append(events, g.ExchangeHands())
		events = append(events, g.beginActionPhase()...)
	}
	return events, nil
}

// actor returns the player allowed to act now.
func (g *Game) actor(playerID int) (*Player, error) {
	if g.Phase != PhaseAction {
		return nil, ErrWrongPhase
	}
	if g.CurrentActor != playerID {
		return nil, ErrNotYourTurn
	}
	p := g.GetPlayer(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	return p, nil
}

func (g *Game) applyPlace(playerID int, action Action) ([]Event, error) {
	p, err := g.actor(playerID)
	if err != nil {
		return nil, err
	}
	if action.Row < 1 || action.Row > RowCount {
		return nil, ErrInvalidRow
	}
	if err := g.checkRank(action.Rank); err != nil {
		return nil, err
	}
	card, err := p.Place(action.Row, action.Rank)
	if err != nil {
		return nil, err
	}

	events := []Event{
		{Type: EventCardPlaced, Player: playerID, Data: map[string]interface{}{
			"card": card.String(), "row": action.Row,
		}},
	}
	return append(events, g.afterAction(p)...), nil
}

func (g *Game) applyDiscard(playerID int, action Action) ([]Event, error) {
	p, err := g.actor(playerID)
	if err != nil {
		return nil, err
	}
	if err := g.checkRank(action.Rank); err != nil {
		return nil, err
	}
	card, err := p.Discard(action.Rank)
	if err != nil {
		return nil, err
	}

	events := []Event{
		{Type: EventCardDiscarded, Player: playerID, Data: map[string]interface{}{
			"card": card.String(),
		}},
	}
	return append(events, g.afterAction(p)...), nil
}

// afterAction hands the turn on once the player's chosen pool is empty.
func (g *Game) afterAction(p *Player) []Event {
	if !p.Chosen.IsEmpty() {
		return nil
	}
	events := []Event{{Type: EventTurnEnd, Player: p.ID}}
	return append(events, g.passTurn(p.ID)...)
}

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id int) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerViewData is one player's cards rendered in card notation.
type PlayerViewData struct {
	ID     int      `json:"id"`
	Hand   string   `json:"hand"`
	Chosen string   `json:"chosen"`
	Rows   []string `json:"rows"`
	IsTurn bool     `json:"is_turn"`
}

// ViewFor returns the state of a single player.
func (g *Game) ViewFor(playerID int) PlayerViewData {
	pv := PlayerViewData{ID: playerID}
	p := g.GetPlayer(playerID)
	if p == nil {
		return pv
	}
	pv.Hand = p.Hand.String()
	pv.Chosen = p.Chosen.String()
	pv.Rows = make([]string, RowCount)
	for i, row := range p.Rows {
		pv.Rows[i] = row.String()
	}
	pv.IsTurn = g.CurrentPlayerID() == playerID
	return pv
}
