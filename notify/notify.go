// notify.go - Best-effort MQTT notifications for new posts and comments

// Package notify publishes small JSON events to an MQTT broker so clients can
// refresh feeds without polling. Publishing never blocks a request for long
// and never fails it.
package notify // Declares the package name

import ( // Import required packages
	"encoding/json" // Payload encoding
	"fmt"           // Error wrapping
	"strings"       // Topic sanitizing
	"time"          // Publish timeout

	mqtt "github.com/eclipse/paho.mqtt.golang" // MQTT client
)

const publishTimeout = 5 * time.Second

// Publisher sends one event to a topic.
type Publisher interface {
	Publish(topic string, payload interface{}) error
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(string, interface{}) error { return nil }

// MQTTPublisher publishes JSON payloads with QoS 1.
type MQTTPublisher struct {
	client mqtt.Client
}

// Connect dials the broker and returns a ready publisher.
func Connect(broker, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(publishTimeout)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(publishTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, err)
	}
	return &MQTTPublisher{client: client}, nil
}

func (p *MQTTPublisher) Publish(topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	token := p.client.Publish(topic, 1, false, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("mqtt publish to %s: timed out", topic)
	}
	return token.Error()
}

// Close disconnects after letting in-flight messages finish.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}

// topicSegment keeps user supplied text from adding levels or wildcards.
var topicSegment = strings.NewReplacer("/", "_", "+", "_", "#", "_")

// CohortTopic is where new questions or projects of a cohort are announced.
func CohortTopic(school, programme, kind string) string {
	return "campus/cohorts/" + topicSegment.Replace(school) + "/" + topicSegment.Replace(programme) + "/" + kind
}

// UserCommentsTopic is where an entity owner hears about new comments.
func UserCommentsTopic(userID string) string {
	return "campus/users/" + topicSegment.Replace(userID) + "/comments"
}

// Event is the payload of every notification.
type Event struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	ByUserID string    `json:"byUserId"`
	Title    string    `json:"title,omitempty"`
	At       time.Time `json:"at"`
}
