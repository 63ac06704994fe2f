package topicdump

import "regexp"

// topicURLPattern matches the thread URL shape. Anything after the topic
// id (an anchor, a page query) is allowed.
var topicURLPattern = regexp.MustCompile(`^https?://www\.v2ex\.com/t/\d+`)

// ExampleTopicURL is shown in usage and validation messages.
const ExampleTopicURL = "https://www.v2ex.com/t/1184608"

// ValidateTopicURL returns an EINVALID error if raw is not a topic URL.
func ValidateTopicURL(raw string) error {
	if !topicURLPattern.MatchString(raw) {
		return Errorf(EINVALID, "invalid topic URL %q (expected e.g. %s)", raw, ExampleTopicURL)
	}
	return nil
}
