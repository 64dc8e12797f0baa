package jwt

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	// NotBeforeSkew is how far before issuance a room token becomes valid, to tolerate clock skew.
	NotBeforeSkew = 5 * time.Second

	// RoomTokenLifetime is how long after issuance a room token stays valid.
	RoomTokenLifetime = 3600 * time.Second

	// DefaultAppID is the audience and issuer used when none is configured.
	DefaultAppID = "biblenow"

	// DefaultSubject is the conferencing domain used as subject when none is configured.
	DefaultSubject = "meet.biblenow.io"

	// DefaultDisplayName is shown for viewers who did not provide a name.
	DefaultDisplayName = "Guest"
)

// Issuer holds the process-wide values the conferencing service checks on every room token.
// It must be configured with the same values on the conferencing side.
type Issuer struct {
	// AppID is used as both audience and issuer.
	AppID string

	// Subject is the conferencing domain.
	Subject string
}

// Viewer describes the person requesting a room token, as asserted by the caller.
type Viewer struct {
	DisplayName string
	Email       string
	Avatar      string
	Moderator   bool
}

// RoomClaims defines the claim set of a room token understood by the conferencing service.
// Standard claims are embedded untagged so that aud, iss, sub, nbf and exp sit at the top level.
type RoomClaims struct {
	jwt.StandardClaims

	// Room is the canonical slug of the room this token grants access to.
	Room string `json:"room"`

	// Context carries the viewer identity and the in-room feature grants.
	Context RoomContext `json:"context"`
}

// RoomContext is the nested authorization context of a room token.
type RoomContext struct {
	User     UserContext `json:"user"`
	Features Features    `json:"features"`
}

// UserContext identifies the viewer inside the room. Email and Avatar are left out of the
// encoded token entirely when empty.
type UserContext struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Moderator bool   `json:"moderator"`
}

// Features is the set of in-room feature grants.
type Features struct {
	ScreenSharing bool `json:"screen-sharing"`
	Livestreaming bool `json:"livestreaming"`
	Recording     bool `json:"recording"`
}

// BuildRoomClaims assembles the claims for a viewer joining the room identified by slug at time now.
//
// Moderators get screen sharing; livestreaming and recording are never granted through room
// tokens, whatever the viewer's role.
func BuildRoomClaims(slug string, viewer Viewer, now time.Time, issuer Issuer) *RoomClaims {
	name := strings.TrimSpace(viewer.DisplayName)
	if name == "" {
		name = DefaultDisplayName
	}

	return &RoomClaims{
		StandardClaims: jwt.StandardClaims{
			Audience:  issuer.AppID,
			Issuer:    issuer.AppID,
			Subject:   issuer.Subject,
			NotBefore: now.Add(-NotBeforeSkew).Unix(),
			ExpiresAt: now.Add(RoomTokenLifetime).Unix(),
		},
		Room: slug,
		Context: RoomContext{
			User: UserContext{
				Name:      name,
				Email:     strings.TrimSpace(viewer.Email),
				Avatar:    strings.TrimSpace(viewer.Avatar),
				Moderator: viewer.Moderator,
			},
			Features: Features{
				ScreenSharing: viewer.Moderator,
				Livestreaming: false,
				Recording:     false,
			},
		},
	}
}
