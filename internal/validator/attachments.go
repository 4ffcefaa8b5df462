package validator

import "strings"

// checkAttachments is stage 9: every attachment type the rule set requires
// must be present in the caller-supplied upload map, within the size limit
// and with an allowed extension.
func (p *pass) checkAttachments() {
	p.result.recordCheck(checkAttachments)

	for _, required := range p.ruleSet.RequiredAttachmentTypes {
		info, ok := p.opts.UploadedAttachments[required]
		if !ok {
			p.result.addError("Falta el documento adjunto obligatorio: %s", required)
			continue
		}
		p.checkAttachmentLimits(required, info)
	}
}

func (p *pass) checkAttachmentLimits(attachmentType string, info AttachmentInfo) {
	if info.SizeBytes > p.ruleSet.MaxAttachmentSizeBytes {
		p.result.addError("El documento adjunto %s supera el tamaño máximo permitido", attachmentType)
	}

	ext := strings.ToLower(strings.TrimPrefix(info.Extension, "."))
	allowed := false
	for _, a := range p.ruleSet.AllowedAttachmentExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		p.result.addError("El documento adjunto %s tiene una extensión no permitida (%s)", attachmentType, info.Extension)
	}
}
