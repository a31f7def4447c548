package domain

type SVNState string

const (
	SVNUnversioned SVNState = "unversioned"
	SVNAdded       SVNState = "added"
	SVNModified    SVNState = "modified"
	SVNDeleted     SVNState = "deleted"
	SVNConflicted  SVNState = "conflicted"
	SVNMissing     SVNState = "missing"
	SVNIgnored     SVNState = "ignored"
	SVNReplaced    SVNState = "replaced"
	SVNNormal      SVNState = "normal"
)

// SVNStateFromCode maps the first column of `svn status` output.
func SVNStateFromCode(code byte) SVNState {
	switch code {
	case '?':
		return SVNUnversioned
	case 'A':
		return SVNAdded
	case 'M':
		return SVNModified
	case 'D':
		return SVNDeleted
	case 'C':
		return SVNConflicted
	case '!':
		return SVNMissing
	case 'I':
		return SVNIgnored
	case 'R':
		return SVNReplaced
	default:
		return SVNNormal
	}
}

type SVNStatusEntry struct {
	Path  string
	State SVNState
}
