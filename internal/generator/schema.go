package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"google.golang.org/genai"

	"PATHFINDER_BACK-END/internal/models"
)

// Type is a JSON value type understood by every provider
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
)

// Node is a provider-neutral output schema. Every property of an object is required.
type Node struct {
	Type        Type
	Description string
	Properties  map[string]*Node
	Order       []string
	Items       *Node
	MinItems    int
	MaxItems    int
	Enum        []string
}

type property struct {
	name string
	node *Node
}

func prop(name string, n *Node) property { return property{name: name, node: n} }

func object(props ...property) *Node {
	n := &Node{Type: TypeObject, Properties: make(map[string]*Node, len(props))}
	for _, p := range props {
		n.Properties[p.name] = p.node
		n.Order = append(n.Order, p.name)
	}
	return n
}

func array(items *Node, minItems, maxItems int) *Node {
	return &Node{Type: TypeArray, Items: items, MinItems: minItems, MaxItems: maxItems}
}

func str(desc string) *Node     { return &Node{Type: TypeString, Description: desc} }
func integer(desc string) *Node { return &Node{Type: TypeInteger, Description: desc} }

func activityNode() *Node {
	return object(
		prop("name", str("Name of the place or activity")),
		prop("description", str("Short description")),
		prop("time", str("Time label, e.g. 09:00 - 11:00")),
		prop("cost", str(`Single estimate in IDR, e.g. "Rp 50.000", or "Free"`)),
	)
}

func dayNode() *Node {
	return object(
		prop("day", integer("1-based day number")),
		prop("date", str("Calendar date of the day")),
		prop("activities", object(
			prop("morning", activityNode()),
			prop("lunch", activityNode()),
			prop("afternoon", activityNode()),
			prop("dinner", activityNode()),
			prop("evening", activityNode()),
		)),
	)
}

func budgetNode() *Node {
	return object(
		prop("accommodation", integer("Accommodation cost")),
		prop("food", integer("Food cost")),
		prop("activities", integer("Activities cost")),
		prop("transport", integer("Transport cost")),
		prop("misc", integer("Miscellaneous cost")),
		prop("total", integer("Sum of all categories")),
		prop("currency", str("Currency code, e.g. IDR")),
	)
}

func hotelNode() *Node {
	category := str("Hotel category")
	category.Enum = models.HotelCategories
	return object(
		prop("name", str("Hotel name")),
		prop("address", str("Street address")),
		prop("description", str("Why this hotel fits the trip")),
		prop("price_per_night", str("Single nightly price estimate")),
		prop("currency", str("Currency code")),
		prop("booking_url_query", str("Search query for a booking site")),
		prop("category", category),
	)
}

// ItinerarySchema declares the full itinerary output for the given day count.
// The extended form adds weather and exactly three hotels.
func ItinerarySchema(days int, extended bool) *Node {
	props := []property{
		prop("itinerary", array(dayNode(), days, days)),
		prop("budget", budgetNode()),
	}
	if extended {
		props = append(props,
			prop("weather", object(
				prop("summary", str("Expected weather for the dates")),
				prop("temperature", str("Temperature range")),
			)),
			prop("hotels", array(hotelNode(), 3, 3)),
		)
	}
	return object(props...)
}

// AlternativesSchema declares exactly three replacement activities
func AlternativesSchema() *Node {
	return object(prop("alternatives", array(activityNode(), 3, 3)))
}

// Genai converts the node into a Gemini response schema
func (n *Node) Genai() *genai.Schema {
	s := &genai.Schema{Description: n.Description, Enum: n.Enum}
	switch n.Type {
	case TypeObject:
		s.Type = genai.TypeObject
		s.Properties = make(map[string]*genai.Schema, len(n.Properties))
		for name, child := range n.Properties {
			s.Properties[name] = child.Genai()
		}
		s.Required = n.Order
		s.PropertyOrdering = n.Order
	case TypeArray:
		s.Type = genai.TypeArray
		s.Items = n.Items.Genai()
		if n.MinItems > 0 {
			s.MinItems = genai.Ptr(int64(n.MinItems))
		}
		if n.MaxItems > 0 {
			s.MaxItems = genai.Ptr(int64(n.MaxItems))
		}
	case TypeString:
		s.Type = genai.TypeString
	case TypeInteger:
		s.Type = genai.TypeInteger
	}
	return s
}

// JSONSchema converts the node into a strict JSON Schema document
func (n *Node) JSONSchema() map[string]any {
	s := map[string]any{"type": string(n.Type)}
	if n.Description != "" {
		s["description"] = n.Description
	}
	if len(n.Enum) > 0 {
		s["enum"] = n.Enum
	}
	switch n.Type {
	case TypeObject:
		props := make(map[string]any, len(n.Properties))
		for name, child := range n.Properties {
			props[name] = child.JSONSchema()
		}
		s["properties"] = props
		s["required"] = n.Order
		s["additionalProperties"] = false
	case TypeArray:
		s["items"] = n.Items.JSONSchema()
		if n.MinItems > 0 {
			s["minItems"] = n.MinItems
		}
		if n.MaxItems > 0 {
			s["maxItems"] = n.MaxItems
		}
	}
	return s
}

// Check validates a raw JSON document against the node
func (n *Node) Check(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return n.check(v, "$")
}

func (n *Node) check(v any, path string) error {
	switch n.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", path)
		}
		for _, name := range n.Order {
			child, present := obj[name]
			if !present {
				return fmt.Errorf("%s: missing field %q", path, name)
			}
			if err := n.Properties[name].check(child, path+"."+name); err != nil {
				return err
			}
		}
		for name := range obj {
			if _, known := n.Properties[name]; !known {
				return fmt.Errorf("%s: unexpected field %q", path, name)
			}
		}
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", path)
		}
		if n.MinItems > 0 && len(arr) < n.MinItems {
			return fmt.Errorf("%s: expected at least %d items, got %d", path, n.MinItems, len(arr))
		}
		if n.MaxItems > 0 && len(arr) > n.MaxItems {
			return fmt.Errorf("%s: expected at most %d items, got %d", path, n.MaxItems, len(arr))
		}
		for i, item := range arr {
			if err := n.Items.check(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%s: expected string", path)
		}
		if len(n.Enum) > 0 && !slices.Contains(n.Enum, s) {
			return fmt.Errorf("%s: %q is not one of %v", path, s, n.Enum)
		}
	case TypeInteger:
		num, ok := v.(json.Number)
		if !ok {
			return fmt.Errorf("%s: expected integer", path)
		}
		if _, err := num.Int64(); err != nil {
			return fmt.Errorf("%s: expected integer, got %s", path, num)
		}
	}
	return nil
}
