// Package workout implements the 4×4 interval workout: four work intervals
// separated by rests, with per-problem flash tracking.
//
// A Session is driven by two kinds of input: user actions and a one-second
// tick. Expiry is handled in two steps. Tick decrements the countdown and,
// when it hits zero, stops the timer and reports TickExpired without touching
// the phase. HandleExpiry then performs the transition. Callers must deliver
// these as separate events.
package workout

import (
	"time"

	"github.com/akyairhashvil/fourbyfour/internal/config"
	"github.com/akyairhashvil/fourbyfour/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// TickResult reports what a tick did.
type TickResult int

const (
	// TickIgnored means the tick was stale or the timer was not running.
	TickIgnored TickResult = iota
	// TickCounted means one second was consumed and more remain.
	TickCounted
	// TickExpired means the countdown reached zero and the timer stopped.
	TickExpired
)

func (r TickResult) String() string {
	switch r {
	case TickCounted:
		return "counted"
	case TickExpired:
		return "expired"
	default:
		return "ignored"
	}
}

// Transition describes a phase change.
type Transition struct {
	From  models.Phase
	To    models.Phase
	Round int
	Early bool
}

type Options struct {
	WorkSeconds int
	RestSeconds int
	MaxGrade    models.Grade
	Strategy    models.Strategy
	Clock       clockwork.Clock
	Logger      zerolog.Logger
}

// Session is the single active workout. It is not safe for concurrent use;
// one owner drives it.
type Session struct {
	workSeconds int
	restSeconds int
	maxGrade    models.Grade
	strategy    models.Strategy

	rounds       []models.Round
	currentRound int
	viewedRound  int
	phase        models.Phase
	remaining    int
	running      bool
	roundTimes   map[int]int

	// seq identifies the only tick allowed to count. It changes whenever
	// running or remaining is changed by anything other than a tick.
	seq uint64

	id          string
	startedAt   time.Time
	completedAt time.Time

	clock  clockwork.Clock
	logger zerolog.Logger
}

func NewSession(opts Options) *Session {
	if opts.WorkSeconds <= 0 {
		opts.WorkSeconds = int(config.WorkDuration / time.Second)
	}
	if opts.RestSeconds <= 0 {
		opts.RestSeconds = int(config.RestDuration / time.Second)
	}
	if !opts.MaxGrade.Valid() {
		opts.MaxGrade = config.DefaultMaxGrade
	}
	if !opts.Strategy.Valid() {
		opts.Strategy = models.DefaultStrategy
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	s := &Session{
		workSeconds:  opts.WorkSeconds,
		restSeconds:  opts.RestSeconds,
		maxGrade:     opts.MaxGrade,
		strategy:     opts.Strategy,
		currentRound: 1,
		viewedRound:  1,
		phase:        models.PhaseSetup,
		remaining:    opts.WorkSeconds,
		roundTimes:   make(map[int]int),
		clock:        opts.Clock,
		logger:       opts.Logger,
	}
	s.regenerate()
	return s
}

func (s *Session) regenerate() {
	s.rounds = NewRounds(GradeSequence(s.strategy, s.maxGrade))
}

func (s *Session) Phase() models.Phase { return s.phase }
func (s *Session) CurrentRound() int { return s.currentRound }
func (s *Session) ViewedRound() int { return s.viewedRound }
func (s *Session) Remaining() int { return s.remaining }
func (s *Session) Running() bool { return s.running }
func (s *Session) Seq() uint64 { return s.seq }
func (s *Session) MaxGrade() models.Grade { return s.maxGrade }
func (s *Session) Strategy() models.Strategy { return s.strategy }
func (s *Session) WorkSeconds() int { return s.workSeconds }
func (s *Session) RestSeconds() int { return s.restSeconds }

// PhaseDuration is the full length of the current timed phase, or 0.
func (s *Session) PhaseDuration() int {
	switch s.phase {
	case models.PhaseWork:
		return s.workSeconds
	case models.PhaseRest:
		return s.restSeconds
	default:
		return 0
	}
}

// Rounds returns a copy of all rounds.
func (s *Session) Rounds() []models.Round {
	return models.CloneRounds(s.rounds)
}

// Round returns a copy of the round with the given id.
func (s *Session) Round(id int) (models.Round, bool) {
	if id < 1 || id > len(s.rounds) {
		return models.Round{}, false
	}
	return models.CloneRounds(s.rounds[id-1 : id])[0], true
}

// RoundTimes returns a copy of the seconds saved per early-finished round.
func (s *Session) RoundTimes() map[int]int {
	out := make(map[int]int, len(s.roundTimes))
	for k, v := range s.roundTimes {
		out[k] = v
	}
	return out
}

func (s *Session) Stats() models.WorkoutStats {
	return models.ComputeStats(s.rounds, s.currentRound)
}

// ShouldTick reports whether a tick needs to be pending.
func (s *Session) ShouldTick() bool {
	return s.running && s.remaining > 0 && s.phase.Timed()
}

func (s *Session) bump() {
	s.seq++
}

// SetMaxGrade changes the max grade and regenerates all rounds. Only
// accepted during setup.
func (s *Session) SetMaxGrade(g models.Grade) bool {
	if s.phase != models.PhaseSetup || !g.Valid() {
		return false
	}
	s.maxGrade = g
	s.regenerate()
	return true
}

// SetStrategy changes the training strategy and regenerates all rounds.
// Only accepted during setup.
func (s *Session) SetStrategy(st models.Strategy) bool {
	if s.phase != models.PhaseSetup || !st.Valid() {
		return false
	}
	s.strategy = st
	s.regenerate()
	return true
}

// Start begins round 1 of work.
func (s *Session) Start() bool {
	if s.phase != models.PhaseSetup {
		return false
	}
	for r := range s.rounds {
		s.rounds[r].Completed = false
		for p := range s.rounds[r].Problems {
			s.rounds[r].Problems[p].Flashed = false
		}
	}
	s.roundTimes = make(map[int]int)
	s.currentRound = 1
	s.viewedRound = 1
	s.phase = models.PhaseWork
	s.remaining = s.workSeconds
	s.running = true
	s.id = uuid.NewString()
	s.startedAt = s.clock.Now()
	s.completedAt = time.Time{}
	s.bump()
	s.logger.Debug().
		Str("workout_id", s.id).
		Str("strategy", string(s.strategy)).
		Stringer("max_grade", s.maxGrade).
		Msg("workout started")
	return true
}

// TogglePause flips the running flag during work or rest.
func (s *Session) TogglePause() bool {
	if !s.phase.Timed() || s.remaining == 0 {
		return false
	}
	s.running = !s.running
	s.bump()
	return true
}

// Tick consumes one second if seq names the live tick. On reaching zero the
// timer stops and TickExpired is returned; the phase does not change.
func (s *Session) Tick(seq uint64) TickResult {
	if seq != s.seq || !s.ShouldTick() {
		return TickIgnored
	}
	s.remaining--
	if s.remaining > 0 {
		return TickCounted
	}
	s.remaining = 0
	s.running = false
	return TickExpired
}

// Expired reports whether the countdown has settled at zero and is waiting
// for HandleExpiry.
func (s *Session) Expired() bool {
	return s.phase.Timed() && s.remaining == 0 && !s.running
}

// HandleExpiry performs the transition for a settled countdown.
func (s *Session) HandleExpiry() (Transition, bool) {
	if !s.Expired() {
		return Transition{}, false
	}
	switch s.phase {
	case models.PhaseWork:
		return s.completeWorkRound(false), true
	case models.PhaseRest:
		from := s.phase
		s.currentRound++
		s.viewedRound = s.currentRound
		s.phase = models.PhaseWork
		s.remaining = s.workSeconds
		s.running = true
		s.bump()
		tr := Transition{From: from, To: s.phase, Round: s.currentRound}
		s.logTransition(tr)
		return tr, true
	}
	return Transition{}, false
}

// FinishEarly ends the current work interval, recording the time left.
func (s *Session) FinishEarly() (Transition, bool) {
	if s.phase != models.PhaseWork || s.Expired() {
		return Transition{}, false
	}
	s.roundTimes[s.currentRound] = s.remaining
	return s.completeWorkRound(true), true
}

func (s *Session) completeWorkRound(early bool) Transition {
	round := s.currentRound
	s.rounds[round-1].Completed = true
	tr := Transition{From: s.phase, Round: round, Early: early}
	if round < RoundCount {
		s.phase = models.PhaseRest
		s.remaining = s.restSeconds
		s.running = true
	} else {
		s.phase = models.PhaseCompleted
		s.running = false
		s.completedAt = s.clock.Now()
	}
	s.bump()
	tr.To = s.phase
	s.logTransition(tr)
	return tr
}

func (s *Session) logTransition(tr Transition) {
	s.logger.Debug().
		Str("workout_id", s.id).
		Str("from", string(tr.From)).
		Str("to", string(tr.To)).
		Int("round", tr.Round).
		Bool("early", tr.Early).
		Msg("phase transition")
}

// Reset returns to setup from any phase. Strategy and max grade are kept and
// the rounds are rebuilt from them.
func (s *Session) Reset() {
	s.phase = models.PhaseSetup
	s.running = false
	s.currentRound = 1
	s.viewedRound = 1
	s.remaining = s.workSeconds
	s.roundTimes = make(map[int]int)
	s.id = ""
	s.startedAt = time.Time{}
	s.completedAt = time.Time{}
	s.regenerate()
	s.bump()
}

// SelectRound changes which round is displayed. It never changes the
// workout's progress.
func (s *Session) SelectRound(id int) bool {
	if id < 1 || id > len(s.rounds) {
		return false
	}
	s.viewedRound = id
	return true
}

func (s *Session) problem(roundID, problemID int) *models.Problem {
	if roundID < 1 || roundID > len(s.rounds) {
		return nil
	}
	problems := s.rounds[roundID-1].Problems
	for i := range problems {
		if problems[i].ID == problemID {
			return &problems[i]
		}
	}
	return nil
}

func (s *Session) ToggleFlash(roundID, problemID int) bool {
	p := s.problem(roundID, problemID)
	if p == nil {
		return false
	}
	p.Flashed = !p.Flashed
	return true
}

func (s *Session) RenameProblem(roundID, problemID int, name string) bool {
	p := s.problem(roundID, problemID)
	if p == nil {
		return false
	}
	p.Name = name
	return true
}

func (s *Session) RegradeProblem(roundID, problemID int, grade models.Grade) bool {
	p := s.problem(roundID, problemID)
	if p == nil || !grade.Valid() {
		return false
	}
	p.Grade = grade
	return true
}

// Record snapshots a completed workout for archiving.
func (s *Session) Record() (models.WorkoutRecord, bool) {
	if s.phase != models.PhaseCompleted {
		return models.WorkoutRecord{}, false
	}
	return models.WorkoutRecord{
		ID:          s.id,
		Strategy:    s.strategy,
		MaxGrade:    s.maxGrade,
		WorkSeconds: s.workSeconds,
		RestSeconds: s.restSeconds,
		StartedAt:   s.startedAt,
		CompletedAt: s.completedAt,
		Rounds:      s.Rounds(),
		RoundTimes:  s.RoundTimes(),
	}, true
}
