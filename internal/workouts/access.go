package workouts

// Ownership rules. Existence is checked by the caller first, so a nil
// resource never reaches these.

// canReadTemplate allows the owner, and everyone for templates of the common user.
func canReadTemplate(userID, commonUserID int, tpl *Template) bool {
	if tpl.UserID == userID {
		return true
	}
	return commonUserID > 0 && tpl.UserID == commonUserID
}

func canModifyTemplate(userID int, tpl *Template) bool {
	return tpl.UserID == userID
}

// canUseTemplate tells if a workout may be started from the template.
func canUseTemplate(userID, commonUserID int, tpl *Template) bool {
	return canReadTemplate(userID, commonUserID, tpl)
}

// canAccessWorkout allows only the user performing the workout, also for
// workouts started from common templates.
func canAccessWorkout(userID int, workout *Workout) bool {
	return workout.UserID == userID
}
