package workouts

import "time"

// TemplateRow is one row of the template / template exercises / exercises
// left join. Exercise columns are nil for a template without exercises.
type TemplateRow struct {
	TemplateID   int
	UserID       int
	Name         string
	Description  string
	ExerciseID   *int
	ExerciseName *string
	Order        *int
	Sets         *int
}

// WorkoutRow is one row of the workout / sets / exercises left join.
type WorkoutRow struct {
	WorkoutID     int
	TemplateID    int
	UserID        int
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	ExerciseID    *int
	ExerciseName  *string
	Set           *int
	Reps          *int
	Weight        *float64
	TimeInSeconds *int
	Notes         *string
}

// groupByParent partitions rows by parent id, keeping the order in which
// parent ids are first seen. Rows of one parent need not be contiguous.
func groupByParent[R any](rows []R, parentID func(R) int) [][]R {
	groups := [][]R{}
	index := make(map[int]int)
	for _, row := range rows {
		id := parentID(row)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], row)
	}
	return groups
}

// CompactTemplate folds the rows of a single template into one Template.
// It reports false when there are no rows.
func CompactTemplate(rows []TemplateRow) (*Template, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	first := rows[0]
	tpl := &Template{
		ID:          first.TemplateID,
		UserID:      first.UserID,
		Name:        first.Name,
		Description: first.Description,
		Exercises:   []TemplateExercise{},
	}
	if first.ExerciseID == nil {
		return tpl, true
	}

	for _, row := range rows {
		if row.ExerciseID == nil {
			continue
		}
		tpl.Exercises = append(tpl.Exercises, TemplateExercise{
			ID:    *row.ExerciseID,
			Name:  deref(row.ExerciseName),
			Order: deref(row.Order),
			Sets:  deref(row.Sets),
		})
	}

	return tpl, true
}

func CompactTemplates(rows []TemplateRow) []Template {
	groups := groupByParent(rows, func(r TemplateRow) int { return r.TemplateID })
	templates := make([]Template, 0, len(groups))
	for _, group := range groups {
		if tpl, ok := CompactTemplate(group); ok {
			templates = append(templates, *tpl)
		}
	}
	return templates
}

// CompactWorkout folds the rows of a single workout into one Workout.
// It reports false when there are no rows.
func CompactWorkout(rows []WorkoutRow) (*Workout, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	first := rows[0]
	workout := &Workout{
		ID:          first.WorkoutID,
		TemplateID:  first.TemplateID,
		UserID:      first.UserID,
		Name:        first.Name,
		Description: first.Description,
		StartDate:   first.StartDate,
		EndDate:     first.EndDate,
		Exercises:   []WorkoutExercise{},
	}
	if first.ExerciseID == nil {
		return workout, true
	}

	for _, row := range rows {
		if row.ExerciseID == nil {
			continue
		}
		workout.Exercises = append(workout.Exercises, WorkoutExercise{
			ID:            *row.ExerciseID,
			Name:          deref(row.ExerciseName),
			Set:           deref(row.Set),
			Reps:          row.Reps,
			Weight:        row.Weight,
			TimeInSeconds: row.TimeInSeconds,
			Notes:         row.Notes,
		})
	}

	return workout, true
}

func CompactWorkouts(rows []WorkoutRow) []Workout {
	groups := groupByParent(rows, func(r WorkoutRow) int { return r.WorkoutID })
	workouts := make([]Workout, 0, len(groups))
	for _, group := range groups {
		if workout, ok := CompactWorkout(group); ok {
			workouts = append(workouts, *workout)
		}
	}
	return workouts
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
