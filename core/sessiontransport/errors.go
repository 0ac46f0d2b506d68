package sessiontransport

import "errors"

// ErrExpiredSession is returned when asked to write a cookie for an expired session.
var ErrExpiredSession = errors.New("sessiontransport: cannot save expired session")
