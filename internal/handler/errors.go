package handler

import "errors"

var errNoHandlers = errors.New("server config has neither an HTTP nor a gRPC address")
