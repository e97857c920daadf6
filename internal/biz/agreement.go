package biz

import (
	"html/template"
	"strings"
)

// AgreementData carries the interpolation points of the agreement boilerplate.
// The legal text itself is opaque to the rest of the system.
type AgreementData struct {
	Company         string
	CompanyUpper    string
	PartnerName     string
	Percentage      float64
	Address         string
	AgreementDate   string
	ReplacementDays string
	InvoiceDays     string
	SigName         string
	SigDesignation  string
}

// Defaults used when the employee record leaves an interpolation point blank.
const (
	DefaultReplacementDays = "60"
	DefaultInvoiceDays     = "45"
	DefaultSignature       = "Authorized Signatory"
	DefaultSigDesignation  = "MANAGING DIRECTOR"
)

// SplitSignature separates "Name - Designation" signature values; a missing
// separator leaves the designation to its default.
func SplitSignature(signature string) (name, designation string) {
	if idx := strings.Index(signature, " - "); idx >= 0 {
		return strings.TrimSpace(signature[:idx]), strings.TrimSpace(signature[idx+3:])
	}
	return strings.TrimSpace(signature), ""
}

// RenderAgreement renders the service agreement HTML for one partner.
func RenderAgreement(data AgreementData) (string, error) {
	var b strings.Builder
	if err := agreementTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var agreementTmpl = template.Must(template.New("agreement").Parse(`<div style="font-family: Arial, Helvetica, sans-serif; color: #000; line-height: 1.6; max-width: 800px; margin: 0 auto; text-align: justify; padding-bottom: 50px;">

<h3 style="text-align: center; text-decoration: underline; font-size: 13px; margin-bottom: 30px;">AGREEMENT B/W {{.CompanyUpper}} - {{.PartnerName}}</h3>

<p style="margin-bottom: 20px;">This Agreement is made and entered into on <strong>{{.AgreementDate}}</strong> by and between:</p>

<p style="margin-bottom: 5px;"><strong>{{.CompanyUpper}}</strong></p>
<p style="margin-bottom: 5px;">Registered Office: {{.Address}}</p>
<p style="margin-bottom: 20px;">(Hereinafter referred to as &ldquo;{{.Company}}&rdquo; or the &ldquo;Service Provider&rdquo;) <strong>AND</strong></p>

<p style="margin-bottom: 5px;"><strong>{{.PartnerName}}</strong></p>
<p style="margin-bottom: 20px;">&ldquo;Parties.&rdquo;</p>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">RECITALS</h4>
<p>WHEREAS, the Client is engaged in the field of Information Technology and Services;</p>
<p>WHEREAS, {{.Company}} is engaged in human resource management and consultancy services, including recruitment, training, and business process outsourcing;</p>
<p><strong>NOW, THEREFORE,</strong> in consideration of the mutual covenants herein, the Parties agree as follows:</p>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">1. CONTRACT TERM</h4>
<ul>
<li>This Agreement shall remain valid for 12 months from the date of signing unless terminated earlier as per Clause 8.</li>
<li>Upon expiry, this Agreement may be extended by mutual written consent.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">2. PROFESSIONAL FEES</h4>
<ul>
<li>The Client shall pay {{.Company}} professional charges as follows:</li>
<li>All Levels &ndash; <strong>{{.Percentage}}%</strong> of Annual CTC (Applicable GST extra).</li>
<li>Annual CTC shall include Basic Salary, HRA, PF, LTA, Medical, Conveyance, and other fixed allowances.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">3. INVOICES &amp; PAYMENT TERMS</h4>
<ul>
<li>On confirmation of candidate joining, {{.Company}} shall raise an invoice <strong>{{.InvoiceDays}} days</strong> post joining.</li>
<li>The Client shall process payment within <strong>15 days</strong> of invoice date, after deduction of applicable taxes.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">4. REPLACEMENT GUARANTEE</h4>
<ul>
<li>If a candidate absconds within <strong>{{.ReplacementDays}} days</strong>, {{.Company}} shall provide a replacement within 10 working days.</li>
<li>If replacement is not provided, the professional fee shall be refunded or adjusted against future invoices.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">5. CONFIDENTIALITY &amp; NON-SOLICITATION</h4>
<ul>
<li>{{.Company}} shall not disclose the Client&rsquo;s confidential information or business practices.</li>
<li>This clause survives the termination of this Agreement.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">6. NON-ASSIGNMENT</h4>
<ul>
<li>This Agreement shall not be assigned by {{.Company}} to any third party without prior written consent of the Client.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">7. GOVERNING LAW &amp; JURISDICTION</h4>
<ul>
<li>This Agreement shall be governed by the laws of India. Courts at Hyderabad and Secunderabad shall have exclusive jurisdiction.</li>
</ul>
</div>

<div class="section-block">
<h4 style="text-decoration: underline; margin-top: 25px;">8. TERMINATION</h4>
<ul>
<li>Either Party may terminate this Agreement with 30 days&rsquo; prior written notice.</li>
</ul>
</div>

<br>
<p><strong>IN WITNESS WHEREOF,</strong> the Parties hereto have executed this Agreement on the date first above written.</p>

<table style="width: 100%; margin-top: 40px; border: none; border-collapse: collapse;">
<tbody>
<tr>
<td style="text-align: left; width: 50%; border: none; vertical-align: top; padding: 0;"><strong>{{.CompanyUpper}}</strong></td>
<td style="text-align: left; width: 50%; border: none; vertical-align: top; padding: 0;"><strong>{{.PartnerName}}</strong></td>
</tr>
<tr>
<td style="border: none; padding: 40px 0 10px 0;"></td>
<td style="border: none; padding: 40px 0 10px 0;"></td>
</tr>
<tr>
<td style="border: none; padding: 5px 0;"><strong>NAME :</strong> {{.SigName}}</td>
<td style="border: none; padding: 5px 0;"><strong>NAME :</strong></td>
</tr>
<tr>
<td style="border: none; padding: 5px 0;"><strong>DESIGNATION :</strong> {{.SigDesignation}}</td>
<td style="border: none; padding: 5px 0;"><strong>DESIGNATION :</strong></td>
</tr>
</tbody>
</table>
</div>`))
