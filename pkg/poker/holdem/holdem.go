package holdem

import (
	"errors"
	"fmt"
	"sync"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pokerbot-engine/pkg/deck"
	"pokerbot-engine/pkg/poker/betting"
	"pokerbot-engine/pkg/poker/handrank"
)

// Table owns the seats, deck, and community cards for one game of No-Limit
// Texas Hold'em and orchestrates each hand from deal to settlement. Exactly
// one seat may act at a time; actions from anyone else are rejected without
// mutating state. Separate tables are fully independent.
type Table struct {
	id      uuid.UUID
	logger  logrus.FieldLogger
	ledger  Ledger
	options Options
	clock   quartz.Clock

	mu          sync.Mutex
	state       State
	players     []*player
	queue       []*player
	dealerIndex int
	handNum     int

	deck      *deck.Deck
	community deck.Hand
	seats     []*betting.Seat
	round     *betting.Round
	pots      betting.Pots
	results   map[int64]handrank.Result
	winners   map[int64]int

	turnSeq   int
	turnTimer *quartz.Timer

	events chan *Snapshot
}

// New returns a new table
func New(logger logrus.FieldLogger, ledger Ledger, opts Options) (*Table, error) {
	return NewWithClock(logger, ledger, opts, quartz.NewReal())
}

// NewWithClock returns a new table with an injected clock for the turn timer
func NewWithClock(logger logrus.FieldLogger, ledger Ledger, opts Options, clock quartz.Clock) (*Table, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Table{
		id:          id,
		logger:      logger.WithField("table", id.String()),
		ledger:      ledger,
		options:     opts,
		clock:       clock,
		state:       StateLobby,
		dealerIndex: -1,
		events:      make(chan *Snapshot, 256),
	}, nil
}

// ID returns the table's unique identifier
func (t *Table) ID() string {
	return t.id.String()
}

// Options returns the table options
func (t *Table) Options() Options {
	return t.options
}

// Events returns the snapshot stream. The channel is buffered; a slow
// consumer loses snapshots rather than stalling the table.
func (t *Table) Events() <-chan *Snapshot {
	return t.events
}

// State returns the table's current phase
func (t *Table) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// HandNum returns how many hands have been started
func (t *Table) HandNum() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handNum
}

// Snapshot returns the current public table state
func (t *Table) Snapshot() *Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

// Join debits the buy-in from the ledger and queues the player for the next
// hand. Players never enter a hand already in progress.
func (t *Table) Join(playerID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.playerByID(playerID) != nil {
		return ErrAlreadySeated
	}

	if len(t.players)+len(t.queue) >= t.options.MaxSeats {
		return ErrTableFull
	}

	if err := t.ledger.Debit(playerID, t.options.BuyIn); err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return ErrInsufficientBuyIn
		}

		return err
	}

	t.queue = append(t.queue, newPlayer(playerID, t.options.BuyIn))
	t.logger.WithField("player", playerID).Info("player joined")
	t.emit()
	return nil
}

// Leave removes the player from the table. A queued player is refunded
// immediately. A seated player folds the live hand and is removed, with
// their stack credited back to the ledger, at the next hand boundary.
func (t *Table) Leave(playerID int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, p := range t.queue {
		if p.id == playerID {
			t.queue = append(t.queue[:i], t.queue[i+1:]...)
			t.ledger.Credit(playerID, p.stack)
			t.logger.WithField("player", playerID).Info("queued player left")
			t.emit()
			return nil
		}
	}

	p := t.seatedByID(playerID)
	if p == nil {
		return ErrNotSeated
	}

	if !t.state.InBettingRound() {
		t.removePlayer(p)
		t.emit()
		return nil
	}

	p.leaving = true
	if s := t.seatByID(playerID); s != nil && !s.Folded() && !s.AllIn() {
		t.round.Forfeit(playerID)
		p.lastAction = "fold"
		p.result = resultFolded
		t.logger.WithField("player", playerID).Info("player left mid-hand")
		t.afterAction()
		return nil
	}

	t.emit()
	return nil
}

// StartHand deals the next hand: departing and busted seats are dropped,
// the join queue is merged, the button advances, blinds post, and every
// seat receives two hole cards. Returns ErrNotEnoughPlayers, cashing out
// whoever remains, when fewer than two seats can play.
func (t *Table) StartHand() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.InBettingRound() {
		return ErrHandInProgress
	}

	t.stopTurnClock()

	remaining := make([]*player, 0, len(t.players))
	for _, p := range t.players {
		if p.leaving || p.stack == 0 {
			t.removeSeat(p)
			continue
		}

		remaining = append(remaining, p)
	}
	t.players = remaining

	t.players = append(t.players, t.queue...)
	t.queue = nil

	if len(t.players) < 2 {
		// the session is over; cash out whoever is left
		for _, p := range t.players {
			t.removeSeat(p)
		}

		t.players = nil
		t.seats = nil
		t.round = nil
		t.state = StateLobby
		t.emit()
		return ErrNotEnoughPlayers
	}

	t.handNum++
	t.dealerIndex = (t.dealerIndex + 1) % len(t.players)

	t.deck = deck.New()
	var seed int64
	if t.options.DeckSeed != 0 {
		seed = t.options.DeckSeed + int64(t.handNum)
	}
	t.deck.Shuffle(seed)

	t.community = make(deck.Hand, 0, 5)
	t.pots = nil
	t.results = nil
	t.winners = nil

	t.seats = make([]*betting.Seat, len(t.players))
	for i, p := range t.players {
		p.newHand()
		t.seats[i] = betting.NewSeat(p, i)
	}

	n := len(t.players)
	smallBlind := (t.dealerIndex + 1) % n
	bigBlind := (t.dealerIndex + 2) % n
	firstToAct := (t.dealerIndex + 3) % n
	if n == 2 {
		// heads-up: the small blind opens the pre-flop action
		firstToAct = smallBlind
	}

	t.round = betting.NewRound(t.seats, firstToAct, t.options.BigBlind)
	t.round.PostBlind(t.seats[smallBlind], t.options.SmallBlind)
	t.round.PostBlind(t.seats[bigBlind], t.options.BigBlind)

	if err := t.dealHoleCards(); err != nil {
		t.abortHand(err)
		return err
	}

	t.state = StatePreFlop
	t.logger.WithFields(logrus.Fields{
		"hand":    t.handNum,
		"players": n,
		"dealer":  t.players[t.dealerIndex].id,
	}).Info("hand started")

	// blinds can put every stack all-in before anyone acts
	if t.round.Closed() {
		t.progress()
	}

	t.emit()
	t.startTurnClock()
	return nil
}

// Act is the single entry point for player decisions. A rejected action
// returns an error and leaves the table untouched.
func (t *Table) Act(playerID int64, action Action) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.seatedByID(playerID)
	if p == nil {
		return ErrNotSeated
	}

	if !t.state.InBettingRound() || t.round == nil {
		return ErrNoHandInProgress
	}

	if err := action.validate(); err != nil {
		return err
	}

	switch action.Type {
	case ActionFold:
		if err := t.round.Fold(playerID); err != nil {
			return err
		}

		p.lastAction = "fold"
		p.result = resultFolded
	case ActionCheck, ActionCall:
		turn := t.round.CurrentTurn()
		if turn == nil || turn.ID() != playerID {
			return betting.ErrOutOfTurn
		}

		if action.Type == ActionCheck && turn.Invested() < t.round.CurrentBet() {
			return fmt.Errorf("cannot check when facing a bet of %d", t.round.CurrentBet())
		}

		paid, err := t.round.CheckOrCall(playerID)
		if err != nil {
			return err
		}

		if paid == 0 {
			p.lastAction = "check"
		} else {
			p.lastAction = fmt.Sprintf("call %d", paid)
		}
	case ActionRaise:
		if err := t.round.RaiseTo(playerID, action.Amount); err != nil {
			return err
		}

		p.lastAction = fmt.Sprintf("raise to %d", action.Amount)
	}

	t.logger.WithFields(logrus.Fields{
		"player": playerID,
		"action": action.String(),
	}).Debug("action accepted")

	t.afterAction()
	return nil
}

// PlayerState returns the private payload for one player: their hole cards
// and current best hand on top of the public snapshot.
func (t *Table) PlayerState(playerID int64) (*PlayerState, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.playerByID(playerID)
	if p == nil {
		return nil, ErrNotSeated
	}

	state := &PlayerState{
		PlayerID: playerID,
		Cards:    p.cards.Clone(),
		Table:    t.snapshot(),
	}

	if len(p.cards) == 2 {
		result := handrank.Evaluate(p.cards, t.community)
		state.Result = &result
		state.Hand = result.Category.String()
	}

	return state, nil
}

// afterAction runs street progression if the betting round closed, then
// emits a snapshot and re-arms the turn clock. Callers hold the mutex.
func (t *Table) afterAction() {
	t.stopTurnClock()
	if t.round != nil && t.round.Closed() {
		t.progress()
	}

	t.emit()
	t.startTurnClock()
}

// progress sweeps the closed street into the pot and advances: next street,
// a straight run-out when nobody can act, or showdown after the river.
func (t *Table) progress() {
	t.round.Sweep()

	if w := t.round.Uncontested(); w != nil {
		t.finishUncontested(w)
		return
	}

	for {
		var err error
		switch t.state {
		case StatePreFlop:
			err = t.dealCommunity(3)
			t.state = StateFlop
		case StateFlop:
			err = t.dealCommunity(1)
			t.state = StateTurn
		case StateTurn:
			err = t.dealCommunity(1)
			t.state = StateRiver
		case StateRiver:
			t.showdown()
			return
		}

		if err != nil {
			t.abortHand(err)
			return
		}

		t.round = betting.NewRound(t.seats, (t.dealerIndex+1)%len(t.seats), t.options.BigBlind)
		if !t.round.Closed() {
			return
		}

		t.round.Sweep()
	}
}

func (t *Table) showdown() {
	t.results = make(map[int64]handrank.Result)
	for _, s := range t.seats {
		if s.Folded() {
			continue
		}

		p := t.seatedByID(s.ID())
		t.results[s.ID()] = handrank.Evaluate(p.cards, t.community)
	}

	t.pots = betting.BuildPots(t.seats)
	t.winners = betting.Settle(t.pots, t.results, t.dealerIndex, len(t.seats))
	betting.ClearContributions(t.seats)

	for _, p := range t.players {
		if won, ok := t.winners[p.id]; ok {
			p.result = resultWon
			p.winnings = won
		} else if _, ok := t.results[p.id]; ok {
			p.result = resultLost
		} else if p.result == resultPending {
			p.result = resultFolded
		}
	}

	t.state = StateHandComplete
	t.round = nil
	t.logger.WithFields(logrus.Fields{
		"hand":    t.handNum,
		"pot":     t.pots.Total(),
		"winners": t.winners,
	}).Info("showdown complete")
}

func (t *Table) finishUncontested(w *betting.Seat) {
	t.pots = betting.BuildPots(t.seats)
	t.winners = betting.AwardAll(t.pots, w)
	betting.ClearContributions(t.seats)

	for _, p := range t.players {
		if p.id == w.ID() {
			p.result = resultWon
			p.winnings = t.winners[p.id]
		} else if p.result == resultPending {
			p.result = resultFolded
		}
	}

	t.state = StateHandComplete
	t.round = nil
	t.logger.WithFields(logrus.Fields{
		"hand":   t.handNum,
		"pot":    t.pots.Total(),
		"winner": w.ID(),
	}).Info("uncontested win")
}

// abortHand unwinds a hand after an internal invariant failure. Every chip
// invested this hand goes back to its seat.
func (t *Table) abortHand(err error) {
	t.logger.WithError(err).Error("aborting hand")

	betting.Refund(t.seats)
	t.state = StateHandComplete
	t.round = nil
}

func (t *Table) dealHoleCards() error {
	for i := 0; i < 2; i++ {
		for _, p := range t.players {
			card, err := t.deck.Draw()
			if err != nil {
				return err
			}

			p.cards.AddCard(card)
		}
	}

	return nil
}

func (t *Table) dealCommunity(n int) error {
	cards, err := t.deck.DrawMany(n)
	if err != nil {
		return err
	}

	t.community = append(t.community, cards...)
	return nil
}

// removeSeat cashes the player out and logs the departure. The caller is
// responsible for taking the player out of t.players.
func (t *Table) removeSeat(p *player) {
	if p.stack > 0 {
		t.ledger.Credit(p.id, p.stack)
	}

	t.logger.WithFields(logrus.Fields{
		"player": p.id,
		"stack":  p.stack,
	}).Info("player left the table")
}

// removePlayer removes a seated player between hands
func (t *Table) removePlayer(target *player) {
	for i, p := range t.players {
		if p == target {
			t.players = append(t.players[:i], t.players[i+1:]...)
			break
		}
	}

	t.removeSeat(target)
	t.seats = nil
	t.round = nil
}

func (t *Table) startTurnClock() {
	if t.options.TurnTimeout <= 0 || t.round == nil || t.round.Closed() {
		return
	}

	turn := t.round.CurrentTurn()
	if turn == nil {
		return
	}

	t.turnSeq++
	seq := t.turnSeq
	id := turn.ID()
	t.turnTimer = t.clock.AfterFunc(t.options.TurnTimeout, func() {
		t.forceFold(seq, id)
	})
}

func (t *Table) stopTurnClock() {
	t.turnSeq++
	if t.turnTimer != nil {
		t.turnTimer.Stop()
		t.turnTimer = nil
	}
}

// forceFold folds the seat that let its turn clock expire. The sequence
// guard keeps a stale timer from ever folding the wrong seat.
func (t *Table) forceFold(seq int, playerID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.turnSeq || t.round == nil || t.round.Closed() {
		return
	}

	turn := t.round.CurrentTurn()
	if turn == nil || turn.ID() != playerID {
		return
	}

	t.logger.WithField("player", playerID).Warn("turn clock expired, folding")
	t.round.Forfeit(playerID)
	if p := t.seatedByID(playerID); p != nil {
		p.lastAction = "timed out"
		p.result = resultFolded
	}

	t.afterAction()
}

func (t *Table) dealerID() int64 {
	if t.dealerIndex < 0 || t.dealerIndex >= len(t.players) {
		return 0
	}

	return t.players[t.dealerIndex].id
}

func (t *Table) playerByID(id int64) *player {
	if p := t.seatedByID(id); p != nil {
		return p
	}

	for _, p := range t.queue {
		if p.id == id {
			return p
		}
	}

	return nil
}

func (t *Table) seatedByID(id int64) *player {
	for _, p := range t.players {
		if p.id == id {
			return p
		}
	}

	return nil
}

func (t *Table) seatByID(id int64) *betting.Seat {
	for _, s := range t.seats {
		if s.ID() == id {
			return s
		}
	}

	return nil
}

// emit publishes the current snapshot to the event stream without blocking.
// A full buffer drops the snapshot rather than stalling the table.
func (t *Table) emit() {
	select {
	case t.events <- t.snapshot():
	default:
		t.logger.Warn("dropping snapshot, event buffer full")
	}
}

func (t *Table) snapshot() *Snapshot {
	seats := make([]*SeatState, len(t.players))
	potTotal := 0
	for i, p := range t.players {
		state := &SeatState{
			PlayerID:   p.id,
			Position:   i,
			Stack:      p.stack,
			Leaving:    p.leaving,
			LastAction: p.lastAction,
			Result:     p.result,
			Winnings:   p.winnings,
		}

		if i < len(t.seats) && t.seats[i].ID() == p.id {
			s := t.seats[i]
			state.StreetBet = s.Invested()
			state.Folded = s.Folded()
			state.AllIn = s.AllIn()
			potTotal += s.Invested() + s.Contributed()
		}

		seats[i] = state
	}

	snapshot := &Snapshot{
		TableID:   t.id.String(),
		HandNum:   t.handNum,
		State:     t.state,
		Community: t.community.Clone(),
		PotTotal:  potTotal,
		Dealer:    t.dealerID(),
		Seats:     seats,
		Winners:   t.winners,
	}

	for _, p := range t.queue {
		snapshot.QueuedIDs = append(snapshot.QueuedIDs, p.id)
	}

	if t.round != nil && !t.round.Closed() {
		snapshot.CurrentBet = t.round.CurrentBet()
		snapshot.MinRaise = t.round.MinRaise()
		if turn := t.round.CurrentTurn(); turn != nil {
			snapshot.CurrentTurn = turn.ID()
		}
	}

	for _, pot := range t.pots {
		ids := make([]int64, len(pot.Eligible))
		for i, s := range pot.Eligible {
			ids[i] = s.ID()
		}

		snapshot.Pots = append(snapshot.Pots, &PotState{
			Amount:      pot.Amount,
			EligibleIDs: ids,
		})
	}

	return snapshot
}
