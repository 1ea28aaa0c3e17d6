// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"
)

// Settings keys shared by the settings bridge, the lockout controller and the
// display policy.
const (
	SettingBiometricID        = "biometricId"
	SettingFakePin            = "fakePin"
	SettingTimeoutLock        = "timeoutLock"
	SettingPinDisplaySecurity = "pinDisplaySecurity"
	SettingReversePin         = "reversePin"
	SettingRandomPin          = "randomPin"
	SettingMaxRetries         = "maxRetries"
	SettingTimeoutLength      = "timeoutLength"

	SettingTimeoutExpiryDate = "timeoutExpiryDate"
	SettingFailedAttempts    = "failedAttempts"

	SettingLastUpdate = "lastUpdate"
	SettingCloudSync  = "iCloudSync"
)

// UserSettingKeys are the keys exposed to the UI. All of them except the
// [DeviceLocalKeys] are copied between replicas when cloud sync is switched
// on or the replicas are synchronized.
var UserSettingKeys = []string{
	SettingBiometricID,
	SettingFakePin,
	SettingTimeoutLock,
	SettingPinDisplaySecurity,
	SettingReversePin,
	SettingRandomPin,
	SettingMaxRetries,
	SettingTimeoutLength,
	SettingTimeoutExpiryDate,
	SettingFailedAttempts,
}

// DeviceLocalKeys never leave the local replica. The lockout state stays
// with the device it was earned on, and the sync flag decides whether a
// cloud replica is used at all.
var DeviceLocalKeys = []string{
	SettingTimeoutExpiryDate,
	SettingFailedAttempts,
	SettingCloudSync,
}

// IsDeviceLocal reports whether key is one of the [DeviceLocalKeys].
func IsDeviceLocal(key string) bool {
	return slices.Contains(DeviceLocalKeys, key)
}

// SettingKind tags the variant held by a [SettingValue].
type SettingKind string

const (
	KindBool      SettingKind = "bool"
	KindInt       SettingKind = "int"
	KindString    SettingKind = "string"
	KindTimestamp SettingKind = "timestamp"
)

// SettingValue is a closed union of the value types a setting may hold.
// The zero value holds nothing and reports an empty kind.
type SettingValue struct {
	kind SettingKind
	b    bool
	i    int64
	s    string
	t    time.Time
}

func BoolValue(b bool) SettingValue           { return SettingValue{kind: KindBool, b: b} }
func IntValue(i int) SettingValue             { return SettingValue{kind: KindInt, i: int64(i)} }
func StringValue(s string) SettingValue       { return SettingValue{kind: KindString, s: s} }
func TimestampValue(t time.Time) SettingValue { return SettingValue{kind: KindTimestamp, t: t.UTC()} }

// Kind returns the variant tag.
func (v SettingValue) Kind() SettingKind { return v.kind }

// IsZero reports whether v holds no value.
func (v SettingValue) IsZero() bool { return v.kind == "" }

func (v SettingValue) Bool() (bool, bool) { return v.b, v.kind == KindBool }

func (v SettingValue) Int() (int, bool) { return int(v.i), v.kind == KindInt }

func (v SettingValue) Str() (string, bool) { return v.s, v.kind == KindString }

func (v SettingValue) Timestamp() (time.Time, bool) { return v.t, v.kind == KindTimestamp }

// Encode renders the value as its kind tag and a canonical string form.
func (v SettingValue) Encode() (SettingKind, string) {
	switch v.kind {
	case KindBool:
		return v.kind, strconv.FormatBool(v.b)
	case KindInt:
		return v.kind, strconv.FormatInt(v.i, 10)
	case KindString:
		return v.kind, v.s
	case KindTimestamp:
		return v.kind, v.t.Format(time.RFC3339Nano)
	default:
		return "", ""
	}
}

// DecodeSettingValue is the inverse of [SettingValue.Encode].
func DecodeSettingValue(kind SettingKind, raw string) (SettingValue, error) {
	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return SettingValue{}, fmt.Errorf("decode bool setting: %w", err)
		}
		return BoolValue(b), nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return SettingValue{}, fmt.Errorf("decode int setting: %w", err)
		}
		return SettingValue{kind: KindInt, i: i}, nil
	case KindString:
		return StringValue(raw), nil
	case KindTimestamp:
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return SettingValue{}, fmt.Errorf("decode timestamp setting: %w", err)
		}
		return TimestampValue(t), nil
	default:
		return SettingValue{}, fmt.Errorf("%w: %q", ErrUnknownSettingKind, kind)
	}
}

type settingValueJSON struct {
	Kind  SettingKind `json:"kind"`
	Value string      `json:"value"`
}

func (v SettingValue) MarshalJSON() ([]byte, error) {
	kind, raw := v.Encode()
	return json.Marshal(settingValueJSON{Kind: kind, Value: raw})
}

func (v *SettingValue) UnmarshalJSON(b []byte) error {
	var in settingValueJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	decoded, err := DecodeSettingValue(in.Kind, in.Value)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
