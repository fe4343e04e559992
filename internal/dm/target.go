package dm

import (
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/Benguin-Productions/wryft/pkg/errors"
)

type TargetKind int

const (
	TargetByID TargetKind = iota
	TargetByUsernameDiscriminator
	TargetByUsernameOnly
)

// TargetSpec is the resolved form of a DM target. Exactly the fields for
// its Kind are set.
type TargetSpec struct {
	Kind          TargetKind
	UserID        uuid.UUID
	Username      string
	Discriminator int
}

// RawTarget mirrors the shapes a caller may supply: an explicit user id, a
// combined "username#disc" token (or a bare username), or separate
// username and discriminator fields.
type RawTarget struct {
	UserID        *uuid.UUID
	Combined      string
	Username      string
	Discriminator *int
}

var combinedTargetRegex = regexp.MustCompile(`^([^#]+)#(\d{1,4})$`)

// ParseTarget resolves a raw target into a TargetSpec. Priority: explicit
// id, then the combined token, then the separate fields. A bare combined
// token without a "#disc" suffix still combines with a separately supplied
// discriminator.
func ParseTarget(raw RawTarget) (TargetSpec, error) {
	if raw.UserID != nil {
		return TargetSpec{Kind: TargetByID, UserID: *raw.UserID}, nil
	}

	username := raw.Username
	disc := raw.Discriminator

	if raw.Combined != "" {
		if m := combinedTargetRegex.FindStringSubmatch(raw.Combined); m != nil {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return TargetSpec{}, errors.ErrInvalidTarget
			}
			username = m[1]
			disc = &n
		} else {
			username = raw.Combined
		}
	}

	if username == "" {
		return TargetSpec{}, errors.ErrInvalidTarget
	}

	if disc != nil {
		if *disc < 1 || *disc > 9999 {
			return TargetSpec{}, errors.ErrInvalidTarget
		}
		return TargetSpec{
			Kind:          TargetByUsernameDiscriminator,
			Username:      username,
			Discriminator: *disc,
		}, nil
	}

	return TargetSpec{Kind: TargetByUsernameOnly, Username: username}, nil
}
