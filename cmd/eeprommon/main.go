package main

import (
	"flag"
	"log"
	"os"
	"reflect"
	"strings"

	"github.com/robotalks/eeprom.go/pkg/remote/mqtt"
	"github.com/robotalks/eeprom.go/pkg/remote/msgs"
)

var (
	mqttURL = "mqtt://localhost:1883/eeprom/"
)

func init() {
	if val := os.Getenv("EEPROM_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/"+mqtt.TopicMeta) {
			if len(payload) == 0 {
				log.Printf("%s: offline", topic)
			} else {
				log.Printf("%s: %s", topic, string(payload))
			}
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		log.Printf("%s: #%d [%s] %s", topic, typed.Sequence,
			reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
			msg.Serializable().String())
	}))
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	<-(chan struct{})(nil)
}
