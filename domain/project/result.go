package project

// CleanResult contains aggregate information about one cleaning run
type CleanResult struct {
	ProjectsFound   int
	ProjectsCleaned int
	SpaceFreed      int64
}
