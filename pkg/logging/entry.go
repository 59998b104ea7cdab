package logging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

func marshalEntry(entry *logrus.Entry, timeKey string) ([]byte, error) {
	fields := make(logrus.Fields, len(entry.Data))
	doc := map[string]interface{}{
		timeKey:   entry.Time.Format(time.RFC3339),
		"level":   entry.Level.String(),
		"message": entry.Message,
		"fields":  fields,
	}

	for k, v := range entry.Data {
		if errObj, ok := v.(error); ok {
			if k == logrus.ErrorKey {
				doc["error"] = map[string]interface{}{
					"message": errObj.Error(),
					"type":    fmt.Sprintf("%T", errObj),
				}
			}
			fields[k] = errObj.Error()
			continue
		}
		fields[k] = v
	}

	return json.Marshal(doc)
}
