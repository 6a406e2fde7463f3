package jobs

import "fmt"

// Topic layout of the job-execution service. Request topics answer on
// their /accepted and /rejected children; notify topics carry events.

func describeTopic(thing, job string) string {
	return fmt.Sprintf("$aws/things/%s/jobs/%s/get", thing, job)
}

func getPendingTopic(thing string) string {
	return fmt.Sprintf("$aws/things/%s/jobs/get", thing)
}

func startNextTopic(thing string) string {
	return fmt.Sprintf("$aws/things/%s/jobs/start-next", thing)
}

func updateTopic(thing, job string) string {
	return fmt.Sprintf("$aws/things/%s/jobs/%s/update", thing, job)
}

func notifyTopic(thing string) string {
	return fmt.Sprintf("$aws/things/%s/jobs/notify", thing)
}

func notifyNextTopic(thing string) string {
	return fmt.Sprintf("$aws/things/%s/jobs/notify-next", thing)
}

func accepted(topic string) string { return topic + "/accepted" }
func rejected(topic string) string { return topic + "/rejected" }
