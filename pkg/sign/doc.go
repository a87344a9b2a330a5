// Package sign provides the cryptographic signing capability consumed by the
// SDK: signing 32-byte digests, signing transactions, and recovering signer
// addresses from signatures.
//
// The Signer interface deliberately exposes no key material, so
// implementations can be backed by an in-memory key, an HSM, or a remote
// key-management service. LocalSigner is the in-memory implementation used
// when the client is configured with a raw private key.
//
//	signer, err := sign.NewLocalSigner(privateKeyHex)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sig, err := signer.SignDigest(sign.PersonalDigest(stateHash))
//
// Signatures are in the 65-byte (r, s, v) Ethereum format with v normalized
// to 27/28 for compatibility with the ecrecover precompile.
package sign
