package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserState is the derived state of a back office user.
type UserState string

const (
	UserStateActive    UserState = "Active"
	UserStateDisabled  UserState = "Disabled"
	UserStateLockedOut UserState = "LockedOut"
	UserStateInvited   UserState = "Invited"
	UserStateInactive  UserState = "Inactive"
)

// UserGroup grants sections, start nodes, languages and default permissions.
type UserGroup struct {
	ID               int
	Key              uuid.UUID
	Alias            string
	Name             string
	Icon             string
	AllowedSections  []string
	StartContentID   *int
	StartMediaID     *int
	Permissions      []string
	AllowedLanguages []int
	UserCount        int
}

// User is a back office user.
type User struct {
	ID       int
	Key      uuid.UUID
	Name     string
	Username string
	Email    string
	Language string
	State    UserState
	Groups   []*UserGroup

	StartContentIDs []int
	StartMediaIDs   []int

	CreateDate             time.Time
	UpdateDate             time.Time
	LastLoginDate          time.Time
	LastLockoutDate        time.Time
	LastPasswordChangeDate time.Time
	FailedPasswordAttempts int
}

// AllowedSections returns the union of sections granted by the user's groups, sorted.
func (u *User) AllowedSections() []string {
	var result []string
	for _, g := range u.Groups {
		for _, s := range g.AllowedSections {
			if !slices.Contains(result, s) {
				result = append(result, s)
			}
		}
	}

	slices.Sort(result)

	return result
}

// CalculateContentStartNodeIDs combines user and group content start nodes.
// A root start node anywhere collapses the result to the root.
func (u *User) CalculateContentStartNodeIDs() []int {
	ids := append([]int{}, u.StartContentIDs...)
	for _, g := range u.Groups {
		if g.StartContentID != nil {
			ids = append(ids, *g.StartContentID)
		}
	}

	return collapseStartNodes(ids)
}

// CalculateMediaStartNodeIDs combines user and group media start nodes.
func (u *User) CalculateMediaStartNodeIDs() []int {
	ids := append([]int{}, u.StartMediaIDs...)
	for _, g := range u.Groups {
		if g.StartMediaID != nil {
			ids = append(ids, *g.StartMediaID)
		}
	}

	return collapseStartNodes(ids)
}

func collapseStartNodes(ids []int) []int {
	if len(ids) == 0 || slices.Contains(ids, RootID) {
		return []int{RootID}
	}

	slices.Sort(ids)

	return slices.Compact(ids)
}
