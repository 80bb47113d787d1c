// Package jwt provides JSON Web Token utilities for the Podium API.
//
// Tokens are signed with RS256. The Service loads an RSA key pair from
// PEM files and exposes Sign and Validate:
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    PublicKeyPath:  "./keys/public.pem",
//	    Issuer:         "podium",
//	    ExpirationMins: 15,
//	})
//
//	token, err := service.Sign(jwt.Claims{UserID: user.ID, Email: user.Email})
//	claims, err := service.Validate(token)
//
// A Service constructed with only a public key can validate but not sign,
// which suits processes that never issue tokens.
package jwt
