package app

import (
	"fmt"
	"strings"
)

// PromptInput holds everything embedded into a roast prompt.
type PromptInput struct {
	Profile            Profile
	TotalContributions int
	TotalStars         int
	MostUsedLanguage   string
	Readme             string
}

// RoastWordLimit is the reply length requested from the model. It is not enforced on the reply.
const RoastWordLimit = 80

const promptSuffix = `Make it something that will surely make the user cry. Max of %d words in reply.
Make it personal. Make the person laugh, but make it hurt.
100%% roasting.
Don't act nice.
Very wicked text. Show no respect. You're a roast king.
It's all for fun though.
`

// ComposePrompt renders roast prompt for given profile data.
// Values are embedded verbatim, empty optional values are rendered as N/A.
func ComposePrompt(in PromptInput) string {
	p := in.Profile

	var sb strings.Builder
	sb.WriteString("You're an AI for roasting profiles (for fun).\n")
	sb.WriteString("Roast the following GitHub profile:\n")
	fmt.Fprintf(&sb, "Username: %s\n", p.Login)
	fmt.Fprintf(&sb, "Bio: %s\n", orNA(p.Bio))
	fmt.Fprintf(&sb, "Total Contributions: %d\n", in.TotalContributions)
	fmt.Fprintf(&sb, "Total Public Repositories: %d\n", p.PublicRepos)
	fmt.Fprintf(&sb, "Total Private Repositories: %d\n", p.PrivateRepos)
	fmt.Fprintf(&sb, "Total Stars: %d\n", in.TotalStars)
	fmt.Fprintf(&sb, "Most Used Language: %s\n", orNA(in.MostUsedLanguage))
	fmt.Fprintf(&sb, "Followers: %d\n", p.Followers)
	fmt.Fprintf(&sb, "Following: %d\n", p.Following)
	fmt.Fprintf(&sb, "Company: %s\n", orNA(p.Company))
	fmt.Fprintf(&sb, "Location: %s\n", orNA(p.Location))
	fmt.Fprintf(&sb, "Blog: %s\n", orNA(p.Blog))
	fmt.Fprintf(&sb, "Twitter: %s\n", orNA(p.TwitterUsername))
	fmt.Fprintf(&sb, "GitHub Profile: %s\n", p.HTMLURL)
	fmt.Fprintf(&sb, "README: %s\n", in.Readme)
	fmt.Fprintf(&sb, promptSuffix, RoastWordLimit)

	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
