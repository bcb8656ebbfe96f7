package network

// AttributeSchema declares a class of attribute applicable to messages.
// Min and Max are kept as declared text; the model does not interpret them.
type AttributeSchema struct {
	Name string
	Type string
	Min  string
	Max  string
}

// AttributeValue is one named attribute value attached to a message.
type AttributeValue struct {
	Name  string
	Value string
}
