package changes

import (
	"strings"

	"github.com/IBM/cloudant-go-sdk/cloudantv1"
)

// MinClientTimeoutMS and LongpollTimeoutMS are the two timing constants
// the follower and iterator are built around: the long-poll timeout sent
// to the server must stay strictly below the client's own read timeout
// so the server always answers first.
const (
	MinClientTimeoutMS = 60_000
	LongpollTimeoutMS  = 57_000

	// BatchSize is the default request limit when IncludeDocs is unset.
	BatchSize = 10_000
)

// Validate enforces the constructor-time rules for PostChangesOptions:
// params must be present, db must be non-empty, none of the forbidden
// options may be set, and filter must be unset or exactly "_selector".
// All offending fields are reported in a single error message.
func Validate(params *cloudantv1.PostChangesOptions) error {
	if params == nil {
		return &InvalidArgumentError{Message: "PostChangesParams configuration is required."}
	}
	if params.Db == "" {
		return &InvalidArgumentError{Message: "The param db is required for PostChangesParams."}
	}

	var offenders []string
	if params.Descending != nil {
		offenders = append(offenders, "descending")
	}
	if params.Feed != nil {
		offenders = append(offenders, "feed")
	}
	if params.Heartbeat != nil {
		offenders = append(offenders, "heartbeat")
	}
	if params.LastEventID != nil {
		offenders = append(offenders, "lastEventId")
	}
	if params.Timeout != nil {
		offenders = append(offenders, "timeout")
	}
	if params.Filter != nil && *params.Filter != "_selector" {
		offenders = append(offenders, "filter")
	}
	if len(offenders) > 0 {
		return invalidArgf("The param(s) '%s' is/are invalid when using ChangesFollower.", strings.Join(offenders, "', '"))
	}
	return nil
}

// CloneOverrides supplies the per-request overlay values Clone applies on
// top of the user's base params. A nil Since/Limit means "no
// override, keep whatever params already has".
type CloneOverrides struct {
	Mode  Mode
	Since *string
	Limit *int64
}

// Clone returns a fresh PostChangesOptions that preserves every field the
// user set, strips the options that cannot survive a clone (the forbidden
// set — they are rejected by Validate so this is defensive), and overlays
// since/limit/feed/timeout for the next request.
func Clone(params *cloudantv1.PostChangesOptions, overrides CloneOverrides) *cloudantv1.PostChangesOptions {
	clone := params.Clone()
	clone.Descending = nil
	clone.Feed = nil
	clone.Heartbeat = nil
	clone.LastEventID = nil
	clone.Timeout = nil

	if overrides.Since != nil {
		clone.Since = overrides.Since
	}
	if overrides.Limit != nil {
		clone.Limit = overrides.Limit
	}

	switch overrides.Mode {
	case FiniteMode:
		feed := "normal"
		clone.Feed = &feed
	case ListenMode:
		feed := "longpoll"
		clone.Feed = &feed
		timeout := int64(LongpollTimeoutMS)
		clone.Timeout = &timeout
	}
	return clone
}
