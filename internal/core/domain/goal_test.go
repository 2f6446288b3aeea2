package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeGoal(id, productID string, goalType GoalType, status GoalStatus, current, target int64) Goal {
	return Goal{
		GoalID:       id,
		ProductID:    productID,
		Type:         goalType,
		Status:       status,
		CurrentValue: decimal.NewFromInt(current),
		TargetValue:  decimal.NewFromInt(target),
	}
}

func TestEvaluateGoals_ReachingTargetExactlyAchieves(t *testing.T) {
	goals := []Goal{makeGoal("g1", "p1", GoalSales, GoalInProgress, 100, 200)}

	updates := EvaluateGoals(goals, "p1", GoalSales, decimal.NewFromInt(100))

	require.Len(t, updates, 1)
	assert.Equal(t, "g1", updates[0].GoalID)
	assert.True(t, updates[0].NewCurrentValue.Equal(decimal.NewFromInt(200)))
	assert.True(t, updates[0].NewlyAchieved)
}

func TestEvaluateGoals_PartialProgressIsNotAchieved(t *testing.T) {
	goals := []Goal{makeGoal("g1", "p1", GoalSales, GoalInProgress, 100, 200)}

	updates := EvaluateGoals(goals, "p1", GoalSales, decimal.NewFromInt(50))

	require.Len(t, updates, 1)
	assert.True(t, updates[0].NewCurrentValue.Equal(decimal.NewFromInt(150)))
	assert.False(t, updates[0].NewlyAchieved)
}

func TestEvaluateGoals_DoneGoalsAreFrozen(t *testing.T) {
	goals := []Goal{
		makeGoal("g1", "p1", GoalSales, GoalDone, 200, 200),
		makeGoal("g2", "p1", GoalSales, GoalActive, 10, 200),
	}

	updates := EvaluateGoals(goals, "p1", GoalSales, decimal.NewFromInt(5))

	require.Len(t, updates, 1)
	assert.Equal(t, "g2", updates[0].GoalID)
}

func TestEvaluateGoals_FiltersByProductAndType(t *testing.T) {
	goals := []Goal{
		makeGoal("g1", "p1", GoalSales, GoalInProgress, 0, 100),
		makeGoal("g2", "p2", GoalSales, GoalInProgress, 0, 100),
		makeGoal("g3", "p1", GoalProduction, GoalInProgress, 0, 100),
	}

	updates := EvaluateGoals(goals, "p1", GoalSales, decimal.NewFromInt(10))

	require.Len(t, updates, 1)
	assert.Equal(t, "g1", updates[0].GoalID)
}

func TestEvaluateGoals_ResultsSortedByGoalID(t *testing.T) {
	goals := []Goal{
		makeGoal("g3", "p1", GoalProduction, GoalInProgress, 0, 100),
		makeGoal("g1", "p1", GoalProduction, GoalActive, 0, 100),
		makeGoal("g2", "p1", GoalProduction, GoalInProgress, 0, 100),
	}

	updates := EvaluateGoals(goals, "p1", GoalProduction, decimal.NewFromInt(1))

	require.Len(t, updates, 3)
	assert.Equal(t, []string{"g1", "g2", "g3"}, []string{updates[0].GoalID, updates[1].GoalID, updates[2].GoalID})
}

func TestEvaluateGoals_OvershootKeepsFullValue(t *testing.T) {
	goals := []Goal{makeGoal("g1", "p1", GoalSales, GoalInProgress, 190, 200)}

	updates := EvaluateGoals(goals, "p1", GoalSales, decimal.NewFromInt(50))

	require.Len(t, updates, 1)
	// No clamp at target; the achieving update records the real value.
	assert.True(t, updates[0].NewCurrentValue.Equal(decimal.NewFromInt(240)))
	assert.True(t, updates[0].NewlyAchieved)
}
