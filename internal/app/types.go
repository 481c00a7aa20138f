package app

// NoReadme is returned in place of README text when the profile repository has no README.
const NoReadme = "No README found."

// Profile entity
type Profile struct {
	Login           string
	Name            string
	Bio             string
	PublicRepos     int
	PrivateRepos    int
	Followers       int
	Following       int
	Company         string
	Location        string
	Blog            string
	TwitterUsername string
	HTMLURL         string
	AvatarURL       string
}

// Repository entity. Empty Language means github reported no language.
type Repository struct {
	Name     string
	Language string
	Stars    int
}

// Roast is the result of a single roast request.
type Roast struct {
	Profile            Profile
	TotalContributions int
	TotalStars         int
	MostUsedLanguage   string
	HasLanguage        bool
	Readme             string
	Text               string

	// TotalRoasts is the value of the global counter after this roast was counted.
	TotalRoasts int64
}
