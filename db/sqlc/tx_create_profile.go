package db

import (
	"context"
)

type CreateProfileTxParams struct {
	CreateProfileParams
	Tags []CreateProfileTxTag `json:"tags"`
}

// CreateProfileTxTag is one tag of the new profile. The profile id is not
// known until the profile row exists, so the tag params carry no reference.
type CreateProfileTxTag struct {
	Name        string `json:"name"`
	Template    string `json:"template"`
	SelfClosing bool   `json:"self_closing"`
	NoCode      bool   `json:"no_code"`
}

type CreateProfileTxResult struct {
	Profile Profile   `json:"profile"`
	Tags    []TagRule `json:"tags"`
}

// CreateProfileTx creates a profile together with all of its tags. Either
// the whole profile lands or nothing does: a duplicate profile name or a
// duplicate tag within the profile rolls everything back.
func (s *SQLStore) CreateProfileTx(ctx context.Context, arg CreateProfileTxParams) (CreateProfileTxResult, error) {
	var result CreateProfileTxResult

	err := s.execTx(ctx, func(q *Queries) error {
		profile, err := q.CreateProfile(ctx, arg.CreateProfileParams)

		if violatesConstraint(err, uniqueViolation, profileNameKey) {
			return ErrDuplicateProfile
		}

		if err != nil {
			return err
		}

		tags := make([]TagRule, len(arg.Tags))

		for i, tag := range arg.Tags {
			created, err := q.CreateTagRule(ctx, CreateTagRuleParams{
				ProfileID:   profile.ID,
				Name:        tag.Name,
				Template:    tag.Template,
				SelfClosing: tag.SelfClosing,
				NoCode:      tag.NoCode,
			})

			// two identical tag names within the request collide with
			// each other just like with an existing row
			if violatesConstraint(err, uniqueViolation, tagRuleProfileNameIdx) {
				return ErrDuplicateTagRule
			}

			if err != nil {
				return err
			}

			tags[i] = created
		}

		result = CreateProfileTxResult{
			Profile: profile,
			Tags:    tags,
		}

		return nil
	})

	return result, err
}
