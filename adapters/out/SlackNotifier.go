/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package out

import (
	"fmt"

	"clam-gateway/fileutils"

	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	webhook   string
	channelID string
}

func NewSlackNotifier(webhook, channelID string) *SlackNotifier {
	return &SlackNotifier{webhook: webhook, channelID: channelID}
}

func (s *SlackNotifier) NotifyInfected(filename, signature, sha256 string) error {
	msg := slack.WebhookMessage{
		Channel: s.channelID,
		Text: fmt.Sprintf(":rotating_light: Infected file detected\nFile: %s\nSignature: %s\nSHA256: %s",
			filename, signature, fileutils.ShortHash(sha256)),
	}

	return slack.PostWebhook(s.webhook, &msg)
}

// NoopNotifier is used when alerting is not configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyInfected(string, string, string) error {
	return nil
}
