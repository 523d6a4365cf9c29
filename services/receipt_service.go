package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"github.com/anjiri1684/pesuconnect/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const receiptFolder = "pesuconnect_receipts"

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 0; color: #222; }
h1 { color: #1f4e8c; }
table { border-collapse: collapse; width: 100%; margin-top: 24px; }
td { padding: 8px; border-bottom: 1px solid #ddd; }
td.label { color: #666; width: 40%; }
</style>
</head>
<body>
<h1>PESUConnect payment receipt</h1>
<table>
<tr><td class="label">Contract</td><td>#{{.ContractID}}</td></tr>
<tr><td class="label">Project</td><td>{{.ProjectTitle}}</td></tr>
<tr><td class="label">Paid by</td><td>{{.PayerName}}</td></tr>
<tr><td class="label">Paid to</td><td>{{.FreelancerName}}</td></tr>
<tr><td class="label">Amount</td><td>{{printf "%.2f" .Amount}}</td></tr>
<tr><td class="label">Method</td><td>{{.Method}}</td></tr>
<tr><td class="label">Date</td><td>{{.IssuedAt.Format "January 2, 2006"}}</td></tr>
</table>
</body>
</html>`))

// ReceiptService renders receipts to PDF with headless Chrome and uploads
// them to Cloudinary.
type ReceiptService struct {
	cld *cloudinary.Cloudinary
}

func NewReceiptService(cloudinaryURL string) (*ReceiptService, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &ReceiptService{cld: cld}, nil
}

func (r *ReceiptService) IssueReceipt(ctx context.Context, receipt models.Receipt) (string, error) {
	htmlData, err := RenderReceiptHTML(receipt)
	if err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	pdf, err := printReceipt(ctx, receipt.ContractID, htmlData)
	if err != nil {
		return "", fmt.Errorf("print receipt: %w", err)
	}
	url, err := r.upload(ctx, pdf, receipt.ContractID)
	if err != nil {
		return "", fmt.Errorf("upload receipt: %w", err)
	}
	log.Printf("✅ Issued receipt for contract %d: %s", receipt.ContractID, url)
	return url, nil
}

func RenderReceiptHTML(receipt models.Receipt) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, receipt); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Receipts print on a single A5 page; sizes are in inches.
const (
	receiptPaperWidth  = 5.83
	receiptPaperHeight = 8.27
	receiptMargin      = 0.4
)

func receiptPrintParams(contractID int64) *page.PrintToPDFParams {
	footer := fmt.Sprintf(`<div style="font-size:8px;width:100%%;text-align:center;color:#666;">PESUConnect receipt for contract #%d</div>`, contractID)
	return page.PrintToPDF().
		WithPaperWidth(receiptPaperWidth).
		WithPaperHeight(receiptPaperHeight).
		WithMarginTop(receiptMargin).
		WithMarginBottom(receiptMargin).
		WithMarginLeft(receiptMargin).
		WithMarginRight(receiptMargin).
		WithPageRanges("1").
		WithPrintBackground(true).
		WithDisplayHeaderFooter(true).
		WithHeaderTemplate("<span></span>").
		WithFooterTemplate(footer)
}

// loadDocument replaces the blank tab's document with the receipt markup.
func loadDocument(htmlContent string) chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		tree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(tree.Frame.ID, htmlContent).Do(ctx)
	})
}

func printReceipt(parent context.Context, contractID int64, htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		loadDocument(htmlContent),
		chromedp.ActionFunc(func(ctx context.Context) (err error) {
			pdf, _, err = receiptPrintParams(contractID).Do(ctx)
			return err
		}),
	)
	return pdf, err
}

func (r *ReceiptService) upload(ctx context.Context, fileBytes []byte, contractID int64) (string, error) {
	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/contract_%d_%s", contractID, uuid.New().String()),
		Folder:       receiptFolder,
		ResourceType: "raw",
	}
	uploadResult, err := r.cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
