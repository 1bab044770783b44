package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// TelemetryField - одна пара ключ/значение кадра телеметрии.
// Origin хранит ключ провайдера для полей внутреннего представления и
// в JSON не попадает.
type TelemetryField struct {
	Key    string
	Value  json.RawMessage
	Origin string
}

// TelemetryFrame - снимок телеметрии Dragon с сохранением порядка ключей
type TelemetryFrame []TelemetryField

var ErrNotObject = errors.New("telemetry frame must be a JSON object")

// Get возвращает значение по ключу
func (f TelemetryFrame) Get(key string) (json.RawMessage, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys возвращает ключи в исходном порядке
func (f TelemetryFrame) Keys() []string {
	keys := make([]string, len(f))
	for i, field := range f {
		keys[i] = field.Key
	}
	return keys
}

// UnmarshalJSON разбирает объект, сохраняя порядок ключей.
// Повторный ключ заменяет значение, но сохраняет первую позицию.
func (f *TelemetryFrame) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	frame := TelemetryFrame{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if i, seen := index[key]; seen {
			frame[i].Value = value
			continue
		}
		index[key] = len(frame)
		frame = append(frame, TelemetryField{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = frame
	return nil
}

// MarshalJSON сериализует кадр в исходном порядке ключей
func (f TelemetryFrame) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if len(field.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(field.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AltitudeM float64 `json:"altitude_m"`
}

// DragonSummary - производное представление кадра телеметрии
type DragonSummary struct {
	GPSTime                 *float64     `json:"gps_time"`
	MissionTime             *float64     `json:"mission_time"`
	MissionTimeFormatted    *string      `json:"mission_time_formatted"`
	AltitudeGeodetic        *float64     `json:"altitude_geodetic"`
	AltitudeKm              *float64     `json:"altitude_km"`
	Speed                   *float64     `json:"speed"`
	SpeedMs                 *float64     `json:"speed_ms"`
	SpeedKmh                *float64     `json:"speed_kmh"`
	ISSCoordinates          *Coordinates `json:"iss_coordinates"`
	DragonCoordinates       *Coordinates `json:"dragon_coordinates"`
	ISSPropagationPoints    int          `json:"iss_propagation_points"`
	DragonPropagationPoints int          `json:"dragon_propagation_points"`
	LastUpdate              string       `json:"last_update"`
}
