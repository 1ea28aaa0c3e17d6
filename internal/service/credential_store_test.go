// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/hashing"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/mock"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	DefaultHashType: "sha256",
	SaltLength:      12,
	SessionSignKey:  "test-sign-key",
	SessionIssuer:   "go-pin-keeper-test",
	SessionDuration: 15 * time.Minute,
	Version:         "test",
}

func newTestCredentialStore(t *testing.T) (CredentialStore, store.SecretStore) {
	t.Helper()
	secrets := newTestSecrets(t)
	return NewCredentialStore(secrets, testAppConfig, logger.Nop()), secrets
}

func readCredential(t *testing.T, secrets store.SecretStore) models.Credential {
	t.Helper()
	raw, err := secrets.Get(context.Background(), credentialKey)
	require.NoError(t, err)
	var rec models.Credential
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestCredentialStore_SetAndVerify(t *testing.T) {
	cs, secrets := newTestCredentialStore(t)
	ctx := context.Background()

	assert.False(t, cs.Exists(ctx))
	assert.False(t, cs.Verify(ctx, "123456"), "nothing verifies without a record")

	require.True(t, cs.SetPassword(ctx, "123456"))

	assert.True(t, cs.Exists(ctx))
	assert.True(t, cs.Verify(ctx, "123456"))
	assert.False(t, cs.Verify(ctx, "654321"))
	assert.False(t, cs.Verify(ctx, ""), "empty candidate never verifies")

	rec := readCredential(t, secrets)
	assert.Equal(t, models.HashSHA256, rec.HashType)
	assert.Equal(t, 12, rec.SaltLength)
	assert.Len(t, rec.Salt, 12)
	assert.NotContains(t, rec.HashedSecret, "123456")
}

func TestCredentialStore_EmptyCandidateAgainstEmptySecretRecord(t *testing.T) {
	cs, secrets := newTestCredentialStore(t)
	ctx := context.Background()

	// A record whose hash is the digest of the salt alone, as if an empty
	// passcode had been stored.
	const salt = "AbCdEfGh1234"
	for _, alg := range []models.HashType{models.HashClear, models.HashSHA256, models.HashArgon2ID} {
		raw, err := json.Marshal(models.Credential{
			HashedSecret: hashing.Digest(alg, salt),
			Salt:         salt,
			HashType:     alg,
			SaltLength:   len(salt),
		})
		require.NoError(t, err)
		require.NoError(t, secrets.Set(ctx, credentialKey, string(raw)))

		require.True(t, cs.Exists(ctx))
		assert.False(t, cs.Verify(ctx, ""), "empty candidate verified under %s", alg)
	}
}

func TestCredentialStore_SaltChangesOnEveryWrite(t *testing.T) {
	cs, secrets := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "123456"))
	first := readCredential(t, secrets)

	require.True(t, cs.SetPassword(ctx, "123456", WithCurrent("123456")))
	second := readCredential(t, secrets)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.HashedSecret, second.HashedSecret)
	assert.True(t, cs.Verify(ctx, "123456"))
}

func TestCredentialStore_ChangeRequiresCurrent(t *testing.T) {
	cs, secrets := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "111111"))
	before, err := secrets.Get(ctx, credentialKey)
	require.NoError(t, err)

	assert.False(t, cs.SetPassword(ctx, "222222"), "missing current passcode")
	assert.False(t, cs.SetPassword(ctx, "222222", WithCurrent("999999")), "wrong current passcode")

	after, err := secrets.Get(ctx, credentialKey)
	require.NoError(t, err)
	assert.Equal(t, before, after, "refused change leaves the record untouched")
	assert.True(t, cs.Verify(ctx, "111111"))

	require.True(t, cs.SetPassword(ctx, "222222", WithCurrent("111111")))
	assert.True(t, cs.Verify(ctx, "222222"))
	assert.False(t, cs.Verify(ctx, "111111"))
}

func TestCredentialStore_RejectsInvalidInput(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	ctx := context.Background()

	assert.False(t, cs.SetPassword(ctx, ""))
	assert.False(t, cs.SetPassword(ctx, "123456", WithHashType("rot13")))
	assert.False(t, cs.SetPassword(ctx, "123456", WithSaltLength(models.MinSaltLength-1)))
	assert.False(t, cs.Exists(ctx))

	assert.True(t, cs.SetPassword(ctx, "123456", WithSaltLength(models.MinSaltLength)))
}

func TestCredentialStore_EveryHashTypeRoundTrips(t *testing.T) {
	for _, hashType := range models.HashTypes {
		t.Run(hashType.String(), func(t *testing.T) {
			cs, secrets := newTestCredentialStore(t)
			ctx := context.Background()

			require.True(t, cs.SetPassword(ctx, "135790", WithHashType(hashType)))

			got, ok := cs.HashType(ctx)
			require.True(t, ok)
			assert.Equal(t, hashType, got)
			assert.Equal(t, hashType, readCredential(t, secrets).HashType)

			assert.True(t, cs.Verify(ctx, "135790"))
			assert.False(t, cs.Verify(ctx, "135791"))
		})
	}
}

func TestCredentialStore_KeepsAlgorithmOfExistingRecord(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "123456", WithHashType(models.HashSHA1), WithSaltLength(8)))
	require.True(t, cs.SetPassword(ctx, "654321", WithCurrent("123456")))

	got, ok := cs.HashType(ctx)
	require.True(t, ok)
	assert.Equal(t, models.HashSHA1, got)
}

func TestCredentialStore_ResetPassword(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "111111"))
	require.True(t, cs.ResetPassword(ctx, "222222"))

	assert.True(t, cs.Verify(ctx, "222222"))
	assert.False(t, cs.Verify(ctx, "111111"))

	assert.False(t, cs.ResetPassword(ctx, ""))
	assert.True(t, cs.Verify(ctx, "222222"))
}

func TestCredentialStore_ResetPasswordFailureKeepsRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secrets := mock.NewMockSecretStore(ctrl)
	cs := NewCredentialStore(secrets, testAppConfig, logger.Nop())
	ctx := context.Background()

	// A single Set and no Delete: the old record stays if the write fails.
	secrets.EXPECT().Set(ctx, credentialKey, gomock.Any()).Return(errors.New("disk full"))

	assert.False(t, cs.ResetPassword(ctx, "222222"))
}

func TestCredentialStore_MigrateAlgorithm(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "123456", WithHashType(models.HashSHA1)))

	assert.False(t, cs.MigrateAlgorithm(ctx, models.HashSHA512, "000000"), "wrong current passcode")
	got, _ := cs.HashType(ctx)
	assert.Equal(t, models.HashSHA1, got)

	assert.False(t, cs.MigrateAlgorithm(ctx, "rot13", "123456"))

	require.True(t, cs.MigrateAlgorithm(ctx, models.HashSHA512, "123456"))
	got, _ = cs.HashType(ctx)
	assert.Equal(t, models.HashSHA512, got)
	assert.True(t, cs.Verify(ctx, "123456"), "migration preserves verification")

	require.True(t, cs.MigrateAlgorithm(ctx, models.HashArgon2ID, "123456"))
	assert.True(t, cs.Verify(ctx, "123456"))
}

func TestCredentialStore_MigrateWithoutRecordChangesDefault(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.MigrateAlgorithm(ctx, models.HashMD5, ""))
	assert.False(t, cs.Exists(ctx))

	require.True(t, cs.SetPassword(ctx, "123456"))
	got, ok := cs.HashType(ctx)
	require.True(t, ok)
	assert.Equal(t, models.HashMD5, got)
}

func TestCredentialStore_SetSaltLength(t *testing.T) {
	cs, secrets := newTestCredentialStore(t)
	ctx := context.Background()

	assert.False(t, cs.SetSaltLength(ctx, models.MinSaltLength-1, ""))

	require.True(t, cs.SetSaltLength(ctx, 6, ""), "no record: changes the default")
	require.True(t, cs.SetPassword(ctx, "123456"))
	assert.Len(t, readCredential(t, secrets).Salt, 6)

	assert.False(t, cs.SetSaltLength(ctx, 20, "000000"))
	require.True(t, cs.SetSaltLength(ctx, 20, "123456"))

	rec := readCredential(t, secrets)
	assert.Len(t, rec.Salt, 20)
	assert.Equal(t, 20, rec.SaltLength)
	assert.True(t, cs.Verify(ctx, "123456"))
}

func TestCredentialStore_ClearIsIdempotent(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "123456"))

	assert.True(t, cs.Clear(ctx))
	assert.True(t, cs.Clear(ctx))
	assert.False(t, cs.Exists(ctx))
	assert.False(t, cs.Verify(ctx, "123456"))

	_, ok := cs.HashType(ctx)
	assert.False(t, ok)
}

func TestCredentialStore_CorruptedRecordFailsClosed(t *testing.T) {
	cs, secrets := newTestCredentialStore(t)
	ctx := context.Background()

	require.NoError(t, secrets.Set(ctx, credentialKey, "not json"))
	assert.False(t, cs.Exists(ctx))
	assert.False(t, cs.Verify(ctx, "123456"))
	assert.False(t, cs.SetPassword(ctx, "123456"), "unreadable record cannot be verified against")

	require.NoError(t, secrets.Set(ctx, credentialKey, `{"password":"abc","salt":"x","hash_type":"rot13","salt_length":4}`))
	assert.False(t, cs.Verify(ctx, "123456"))

	require.True(t, cs.ResetPassword(ctx, "123456"), "reset recovers from a corrupted record")
	assert.True(t, cs.Verify(ctx, "123456"))
}

func TestCredentialStore_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secrets := mock.NewMockSecretStore(ctrl)
	cs := NewCredentialStore(secrets, testAppConfig, logger.Nop())
	ctx := context.Background()
	boom := errors.New("keychain locked")

	secrets.EXPECT().Get(ctx, credentialKey).Return("", boom).Times(3)
	secrets.EXPECT().Delete(ctx, credentialKey).Return(boom)

	assert.False(t, cs.Exists(ctx))
	assert.False(t, cs.Verify(ctx, "123456"))
	assert.False(t, cs.SetPassword(ctx, "123456"))
	assert.False(t, cs.Clear(ctx))
}

func TestCredentialStore_ClearMissingSecretSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secrets := mock.NewMockSecretStore(ctrl)
	cs := NewCredentialStore(secrets, testAppConfig, logger.Nop())

	secrets.EXPECT().Delete(gomock.Any(), credentialKey).Return(store.ErrSecretNotFound)

	assert.True(t, cs.Clear(context.Background()))
}

func TestNewCredentialStore_InvalidDefaultsFallBack(t *testing.T) {
	secrets := newTestSecrets(t)
	cs := NewCredentialStore(secrets, config.App{DefaultHashType: "rot13", SaltLength: 1}, logger.Nop())
	ctx := context.Background()

	require.True(t, cs.SetPassword(ctx, "123456"))

	rec := readCredential(t, secrets)
	assert.Equal(t, models.HashSHA256, rec.HashType)
	assert.Equal(t, models.DefaultSaltLength, rec.SaltLength)
}
