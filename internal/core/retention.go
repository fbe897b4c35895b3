package core

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"artifactory-cleanup/internal/policies"
	"artifactory-cleanup/internal/types"
)

// Select applies the retention policy to the inventory and returns the
// entries eligible for deletion. The result preserves inventory order
// and contains each path at most once. Entries missing the selected
// date field are skipped and counted, never fatal.
func Select(ctx context.Context, entries []types.ArtifactEntry, policy types.RetentionPolicy, now time.Time) (types.CleanupPlan, error) {
	if err := validateDateField(policy.DateField); err != nil {
		return types.CleanupPlan{}, err
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}
	pathPolicy := policies.NewPathPolicy(policy.ProtectedPaths, policy.CleanupTargetPaths)
	cutoff := now.AddDate(0, 0, -policy.ThresholdDays)

	plan := types.CleanupPlan{}
	seen := map[string]struct{}{}
	for _, entry := range entries {
		if entry.Path == "" {
			return types.CleanupPlan{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("inventory entry missing path field")
		}
		if entry.Type != types.EntryTypeFile {
			continue
		}
		if !pathPolicy.Eligible(entry.Path) {
			continue
		}
		date, ok := entry.DateValue(policy.DateField)
		if !ok {
			plan.SkippedMissingDate++
			continue
		}
		// age >= threshold, inclusive at the cutoff instant.
		if date.After(cutoff) {
			continue
		}
		key := entry.Pattern()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		plan.Eligible = append(plan.Eligible, entry)
	}
	log.Ctx(ctx).Debug().
		Int("eligible", len(plan.Eligible)).
		Int("skipped_missing_date", plan.SkippedMissingDate).
		Msg("retention filter completed")
	return plan, nil
}

func validateDateField(field types.DateField) error {
	switch field {
	case types.DateFieldCreated, types.DateFieldModified, types.DateFieldUpdated:
		return nil
	case "":
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("date field must be created, modified or updated")
	}
}
