package auth

import (
	"github.com/Abhijeetcode911/customgpt-payment/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newKeyVerifier),
	fx.Provide(newSignatureVerifier),
)

type verifierParams struct {
	fx.In

	Config *config.Config
}

func newKeyVerifier(p verifierParams) KeyVerifier {
	if p.Config.APIKeyHash == "" {
		return OpenAccess{}
	}
	return NewBcryptKeyVerifier(p.Config.APIKeyHash)
}

func newSignatureVerifier(p verifierParams) *SignatureVerifier {
	return NewSignatureVerifier(p.Config.RazorpayKeySecret)
}
