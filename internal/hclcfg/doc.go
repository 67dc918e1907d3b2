// Package hclcfg provides the concrete HCL implementation for the
// configuration loading interface defined in the `config` package. It is
// responsible for site file parsing, HCL-to-model translation, and
// CTY-to-Go data binding.
package hclcfg
