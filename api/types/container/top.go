package container

// TopResponse is the engine's answer to a container top call: the column
// titles and one row per process.
type TopResponse struct {
	Titles    []string   `json:"Titles"`
	Processes [][]string `json:"Processes"`
}
