package hclcfg

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/socialgridgo/internal/config"
	"github.com/vk/socialgridgo/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// siteFileSchema admits only `site` blocks at the top level, so a typoed
// block name surfaces as a decode error instead of being ignored.
var siteFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "site"},
	},
}

// siteBlockSchema lists every attribute a `site` block may carry.
var siteBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "title"},
		{Name: "output_dir"},
	},
}

// Load reads a site file and translates it into the agnostic model. An empty
// path means no site file was given, which yields the built-in defaults.
// Attributes omitted from the file keep their defaults too.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	model := config.Default()
	if path == "" {
		logger.Debug("No site file given, using default site settings.")
		return model, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse site file %s: %w", path, diags)
	}

	content, diags := file.Body.Content(siteFileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode site file %s: %w", path, diags)
	}

	for _, block := range content.Blocks {
		if err := decodeSiteBlock(block, model); err != nil {
			return nil, fmt.Errorf("invalid site block in %s: %w", path, err)
		}
	}

	logger.Debug("Site configuration loaded.", "path", path, "title", model.Title, "output_dir", model.OutputDir)
	return model, nil
}

// decodeSiteBlock applies one `site` block onto the model. Later blocks win
// over earlier ones, attribute by attribute.
func decodeSiteBlock(block *hcl.Block, model *config.Model) error {
	content, diags := block.Body.Content(siteBlockSchema)
	if diags.HasErrors() {
		return diags
	}

	if attr, ok := content.Attributes["title"]; ok {
		if err := decodeString(attr, &model.Title); err != nil {
			return err
		}
	}
	if attr, ok := content.Attributes["output_dir"]; ok {
		if err := decodeString(attr, &model.OutputDir); err != nil {
			return err
		}
	}
	return nil
}

// decodeString evaluates an attribute expression and binds it to a Go string,
// converting compatible cty types along the way.
func decodeString(attr *hcl.Attribute, target *string) error {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return fmt.Errorf("cannot convert attribute %q from %s to string: %w", attr.Name, val.Type().FriendlyName(), err)
	}
	return gocty.FromCtyValue(converted, target)
}
