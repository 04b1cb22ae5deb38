// Assinatura digital XMLDSig (enveloped) da NF-e, conforme o Manual de
// Orientação do Contribuinte. O <Signature> é inserido como irmão do
// <infNFe>, dentro do elemento <NFe>.
package nfe

import (
	"bytes"
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	appnfe "github.com/frigosul/frigosul-api/internal/application/nfe"
)

const (
	NamespaceDS        = "http://www.w3.org/2000/09/xmldsig#"
	AlgC14N            = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	AlgRSASHA256       = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha256"
	AlgSHA256          = "http://www.w3.org/2001/04/xmlenc#sha256"
	TransformEnveloped = "http://www.w3.org/2000/09/xmldsig#enveloped-signature"
)

var _ appnfe.Signer = (*Signer)(nil)

// Signer assina o XML da NF-e com o certificado A1 do emitente.
type Signer struct {
	cert tls.Certificate
}

// NewSigner carrega o certificado PEM e devolve o assinador. Com certPath
// vazio devolve (nil, nil): a emissão para em nota_gerada (modo simulado).
func NewSigner(certPath, keyPath string) (*Signer, error) {
	if certPath == "" {
		return nil, nil
	}
	if keyPath == "" {
		// Um único arquivo PEM pode conter cert+chave.
		keyPath = certPath
	}
	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("nfe: carregar certificado: %w", err)
	}
	return &Signer{cert: cert}, nil
}

// Sign assina o infNFe e injeta o ds:Signature no documento.
func (s *Signer) Sign(xmlStr string) (string, error) {
	if xmlStr == "" {
		return "", fmt.Errorf("nfe: XML vazio")
	}
	priv, ok := s.cert.PrivateKey.(*rsa.PrivateKey)
	if !ok {
		return "", fmt.Errorf("nfe: o certificado deve incluir chave privada RSA")
	}
	x509Cert, err := x509.ParseCertificate(s.cert.Certificate[0])
	if err != nil {
		return "", fmt.Errorf("nfe: parsear certificado: %w", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xmlStr); err != nil {
		return "", fmt.Errorf("nfe: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("nfe: documento sem raiz")
	}
	inf := root.SelectElement("infNFe")
	if inf == nil {
		return "", fmt.Errorf("nfe: infNFe não encontrado")
	}
	id := inf.SelectAttrValue("Id", "")
	if id == "" {
		return "", fmt.Errorf("nfe: infNFe sem atributo Id")
	}

	// 1) Digest do infNFe (C14N). Reference URI="#NFe<chave>"
	infDoc := etree.NewDocument()
	infCopy := inf.Copy()
	infCopy.CreateAttr("xmlns", NamespaceNFe)
	infDoc.SetRoot(infCopy)
	infBytes, err := infDoc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("nfe: serializar infNFe: %w", err)
	}
	canonicalInf, err := canonicalizeXML(infBytes)
	if err != nil {
		canonicalInf = infBytes
	}
	docDigest := sha256.Sum256(canonicalInf)
	docDigestB64 := base64.StdEncoding.EncodeToString(docDigest[:])

	// 2) SignedInfo (C14N, Reference #Id, Digest SHA-256)
	signedInfoXML := buildSignedInfo(id, docDigestB64)
	canonicalSignedInfo, err := canonicalizeXML([]byte(signedInfoXML))
	if err != nil {
		canonicalSignedInfo = []byte(signedInfoXML)
	}
	signHash := sha256.Sum256(canonicalSignedInfo)
	signatureValue, err := rsa.SignPKCS1v15(nil, priv, crypto.SHA256, signHash[:])
	if err != nil {
		return "", fmt.Errorf("nfe: assinar SignedInfo: %w", err)
	}

	// 3) KeyInfo (X509Certificate)
	certB64 := base64.StdEncoding.EncodeToString(x509Cert.Raw)
	signatureXML := buildSignatureXML(signedInfoXML,
		base64.StdEncoding.EncodeToString(signatureValue), certB64)

	// 4) Injetar após o infNFe
	sigDoc := etree.NewDocument()
	if err := sigDoc.ReadFromString(signatureXML); err != nil {
		return "", fmt.Errorf("nfe: parsear Signature: %w", err)
	}
	if sigRoot := sigDoc.Root(); sigRoot != nil {
		root.AddChild(sigRoot)
	}
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("nfe: serializar XML assinado: %w", err)
	}
	return out, nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func buildSignedInfo(id, docDigestB64 string) string {
	var sb strings.Builder
	sb.WriteString(`<ds:SignedInfo xmlns:ds="` + NamespaceDS + `">`)
	sb.WriteString(`<ds:CanonicalizationMethod Algorithm="` + AlgC14N + `"/>`)
	sb.WriteString(`<ds:SignatureMethod Algorithm="` + AlgRSASHA256 + `"/>`)
	sb.WriteString(`<ds:Reference URI="#` + id + `">`)
	sb.WriteString(`<ds:Transforms><ds:Transform Algorithm="` + TransformEnveloped + `"/>`)
	sb.WriteString(`<ds:Transform Algorithm="` + AlgC14N + `"/></ds:Transforms>`)
	sb.WriteString(`<ds:DigestMethod Algorithm="` + AlgSHA256 + `"/>`)
	sb.WriteString(`<ds:DigestValue>` + docDigestB64 + `</ds:DigestValue>`)
	sb.WriteString(`</ds:Reference>`)
	sb.WriteString(`</ds:SignedInfo>`)
	return sb.String()
}

func buildSignatureXML(signedInfoXML, signatureValueB64, certB64 string) string {
	var sb strings.Builder
	sb.WriteString(`<ds:Signature xmlns:ds="` + NamespaceDS + `">`)
	sb.WriteString(signedInfoXML)
	sb.WriteString(`<ds:SignatureValue>` + signatureValueB64 + `</ds:SignatureValue>`)
	sb.WriteString(`<ds:KeyInfo><ds:X509Data><ds:X509Certificate>` + certB64 + `</ds:X509Certificate></ds:X509Data></ds:KeyInfo>`)
	sb.WriteString(`</ds:Signature>`)
	return sb.String()
}
