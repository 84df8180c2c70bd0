// Package endpoints maps each logical Docker API operation onto its wire
// location: HTTP method, path template, and the status codes the daemon
// documents as success for that call.
//
// The catalog is total over the supported operation set. Failures here are
// programmer errors (an unknown operation, or a path argument count that does
// not match the template) and panic rather than returning an error.
package endpoints

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Operation identifies a supported Docker API call.
type Operation int

const (
	ContainerCreate Operation = iota
	ContainerList
	ContainerInspect
	ContainerStart
	ContainerStop
	ContainerRestart
	ContainerKill
	ContainerPause
	ContainerUnpause
	ContainerRename
	ContainerRemove
	ContainerWait
	ContainerLogs
	ContainerChanges
	ContainerExport
	ContainerTop
	ContainerExecCreate
	ExecInspect
	ImageList
	ImagePull
	VolumeCreate
	VolumeList
	VolumeInspect
	VolumeRemove
	VolumesPrune
	NetworkCreate
	NetworkConnect
	NetworkInspect
	Ping
)

// Endpoint describes where an operation lives on the wire. Path is a
// printf-style template with one %s per path identifier. Unversioned
// endpoints are requested without the /v1.xx prefix.
type Endpoint struct {
	Method      string
	Path        string
	Success     []int
	Unversioned bool
}

var catalog = map[Operation]Endpoint{
	ContainerCreate:     {Method: http.MethodPost, Path: "/containers/create", Success: []int{http.StatusCreated}},
	ContainerList:       {Method: http.MethodGet, Path: "/containers/json", Success: []int{http.StatusOK}},
	ContainerInspect:    {Method: http.MethodGet, Path: "/containers/%s/json", Success: []int{http.StatusOK}},
	ContainerStart:      {Method: http.MethodPost, Path: "/containers/%s/start", Success: []int{http.StatusNoContent, http.StatusNotModified}},
	ContainerStop:       {Method: http.MethodPost, Path: "/containers/%s/stop", Success: []int{http.StatusNoContent, http.StatusNotModified}},
	ContainerRestart:    {Method: http.MethodPost, Path: "/containers/%s/restart", Success: []int{http.StatusNoContent}},
	ContainerKill:       {Method: http.MethodPost, Path: "/containers/%s/kill", Success: []int{http.StatusNoContent}},
	ContainerPause:      {Method: http.MethodPost, Path: "/containers/%s/pause", Success: []int{http.StatusNoContent}},
	ContainerUnpause:    {Method: http.MethodPost, Path: "/containers/%s/unpause", Success: []int{http.StatusNoContent}},
	ContainerRename:     {Method: http.MethodPost, Path: "/containers/%s/rename", Success: []int{http.StatusNoContent}},
	ContainerRemove:     {Method: http.MethodDelete, Path: "/containers/%s", Success: []int{http.StatusNoContent}},
	ContainerWait:       {Method: http.MethodPost, Path: "/containers/%s/wait", Success: []int{http.StatusOK}},
	ContainerLogs:       {Method: http.MethodGet, Path: "/containers/%s/logs", Success: []int{http.StatusOK}},
	ContainerChanges:    {Method: http.MethodGet, Path: "/containers/%s/changes", Success: []int{http.StatusOK}},
	ContainerExport:     {Method: http.MethodGet, Path: "/containers/%s/export", Success: []int{http.StatusOK}},
	ContainerTop:        {Method: http.MethodGet, Path: "/containers/%s/top", Success: []int{http.StatusOK}},
	ContainerExecCreate: {Method: http.MethodPost, Path: "/containers/%s/exec", Success: []int{http.StatusCreated}},
	ExecInspect:         {Method: http.MethodGet, Path: "/exec/%s/json", Success: []int{http.StatusOK}},
	ImageList:           {Method: http.MethodGet, Path: "/images/json", Success: []int{http.StatusOK}},
	ImagePull:           {Method: http.MethodPost, Path: "/images/create", Success: []int{http.StatusOK}},
	VolumeCreate:        {Method: http.MethodPost, Path: "/volumes/create", Success: []int{http.StatusCreated}},
	VolumeList:          {Method: http.MethodGet, Path: "/volumes", Success: []int{http.StatusOK}},
	VolumeInspect:       {Method: http.MethodGet, Path: "/volumes/%s", Success: []int{http.StatusOK}},
	VolumeRemove:        {Method: http.MethodDelete, Path: "/volumes/%s", Success: []int{http.StatusNoContent}},
	VolumesPrune:        {Method: http.MethodPost, Path: "/volumes/prune", Success: []int{http.StatusOK}},
	NetworkCreate:       {Method: http.MethodPost, Path: "/networks/create", Success: []int{http.StatusCreated}},
	NetworkConnect:      {Method: http.MethodPost, Path: "/networks/%s/connect", Success: []int{http.StatusOK}},
	NetworkInspect:      {Method: http.MethodGet, Path: "/networks/%s", Success: []int{http.StatusOK}},
	Ping:                {Method: http.MethodGet, Path: "/_ping", Success: []int{http.StatusOK}, Unversioned: true},
}

// Resolve returns the endpoint for op. It panics on an operation outside the
// catalog; typed call sites make that unreachable.
func Resolve(op Operation) Endpoint {
	e, ok := catalog[op]
	if !ok {
		panic(fmt.Sprintf("endpoints: unknown operation %d", int(op)))
	}
	return e
}

// Format substitutes the path template's identifier placeholders. It panics
// when the argument count does not match the template.
func (e Endpoint) Format(args ...string) string {
	want := strings.Count(e.Path, "%s")
	if len(args) != want {
		panic(fmt.Sprintf("endpoints: path %q takes %d arguments, got %d", e.Path, want, len(args)))
	}
	if want == 0 {
		return e.Path
	}
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a
	}
	return fmt.Sprintf(e.Path, vals...)
}

// IsSuccess reports whether status is in the operation's success set.
func (e Endpoint) IsSuccess(status int) bool {
	return slices.Contains(e.Success, status)
}
