// Package milestone fires one-shot notifications the first time XP, streak
// or habit-count thresholds are crossed.
package milestone

// Milestone is one threshold row. Exactly one of XP, Streak or HabitCount is
// set per row.
type Milestone struct {
	XP         int
	Streak     int
	HabitCount int
	Message    string
}

// Table is the fixed milestone table. Evaluation follows declaration order,
// not threshold value order.
var Table = []Milestone{
	{XP: 100, Message: "Primeiro Centenário! 100 XP alcançados! 💯"},
	{XP: 500, Message: "Meio Milhar! 500 XP conquistados! 🎯"},
	{XP: 1000, Message: "Mestre dos Mil! 1000 XP dominados! 🏆"},
	{Streak: 7, Message: "Semana Completa! 7 dias consecutivos! 🔥"},
	{Streak: 30, Message: "Mês de Dedicação! 30 dias seguidos! 🌟"},
	{HabitCount: 5, Message: "Colecionador! 5 hábitos diferentes! 📚"},
	{HabitCount: 10, Message: "Especialista! 10 hábitos ativos! 🎖️"},
}

// Evaluator tracks which milestones already fired for the current session.
// A milestone fires at most once per session per user; stats dropping back
// below a threshold never un-fires it.
type Evaluator struct {
	fired map[string]bool
}

func NewEvaluator() *Evaluator {
	return &Evaluator{fired: make(map[string]bool)}
}

// Seed marks messages as already fired, e.g. from the persisted achievement
// list, so re-login does not replay them.
func (e *Evaluator) Seed(messages []string) {
	for _, m := range messages {
		e.fired[m] = true
	}
}

// Evaluate checks every row against the current stats and returns the newly
// fired messages in table order.
func (e *Evaluator) Evaluate(xp, streak, habitCount int) []string {
	var fired []string
	for _, m := range Table {
		achieved := false
		if m.XP > 0 && xp >= m.XP {
			achieved = true
		}
		if m.Streak > 0 && streak >= m.Streak {
			achieved = true
		}
		if m.HabitCount > 0 && habitCount >= m.HabitCount {
			achieved = true
		}

		if achieved && !e.fired[m.Message] {
			e.fired[m.Message] = true
			fired = append(fired, m.Message)
		}
	}
	return fired
}

// Reset clears the fired set, e.g. on logout.
func (e *Evaluator) Reset() {
	e.fired = make(map[string]bool)
}
