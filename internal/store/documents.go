package store

// Document file names inside the data directory.
const (
	EventsDocument       = "events.json"
	VideosDocument       = "videos.json"
	ApplicationsDocument = "applications.json"
	SubmissionsDocument  = "submissions.json"
	SessionsDocument     = "sessions.json"
	SettingsDocument     = "settings.json"
)
