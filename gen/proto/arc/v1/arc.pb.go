// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: arc/v1/arc.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ClassifyDocumentRequest struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	UserId string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// Server-local path to the file. Mutually exclusive with content.
	Path string `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	// Inline file content, capped by the server's upload limit.
	Content []byte `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	// Original filename; required when content is set, used for the
	// extension and the archive name.
	Filename      string `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDocumentRequest) Reset() {
	*x = ClassifyDocumentRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDocumentRequest) ProtoMessage() {}

func (x *ClassifyDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDocumentRequest.ProtoReflect.Descriptor instead.
func (*ClassifyDocumentRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{0}
}

func (x *ClassifyDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ClassifyDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ClassifyDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ClassifyDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ClassifyDocumentResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Document *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	// Non-empty when the pipeline failed after registering the document.
	Error         string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClassifyDocumentResponse) Reset() {
	*x = ClassifyDocumentResponse{}
	mi := &file_arc_v1_arc_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifyDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifyDocumentResponse) ProtoMessage() {}

func (x *ClassifyDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifyDocumentResponse.ProtoReflect.Descriptor instead.
func (*ClassifyDocumentResponse) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{1}
}

func (x *ClassifyDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *ClassifyDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{2}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"` // default 50
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{3}
}

func (x *ListDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_arc_v1_arc_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{4}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_arc_v1_arc_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteDocumentResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type GetStatisticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatisticsRequest) Reset() {
	*x = GetStatisticsRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsRequest) ProtoMessage() {}

func (x *GetStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsRequest.ProtoReflect.Descriptor instead.
func (*GetStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{7}
}

func (x *GetStatisticsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetStatisticsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Total             int32                  `protobuf:"varint,1,opt,name=total,proto3" json:"total,omitempty"`
	ByCategory        map[string]int32       `protobuf:"bytes,2,rep,name=by_category,json=byCategory,proto3" json:"by_category,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	AverageConfidence float64                `protobuf:"fixed64,3,opt,name=average_confidence,json=averageConfidence,proto3" json:"average_confidence,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetStatisticsResponse) Reset() {
	*x = GetStatisticsResponse{}
	mi := &file_arc_v1_arc_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsResponse) ProtoMessage() {}

func (x *GetStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsResponse.ProtoReflect.Descriptor instead.
func (*GetStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{8}
}

func (x *GetStatisticsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetStatisticsResponse) GetByCategory() map[string]int32 {
	if x != nil {
		return x.ByCategory
	}
	return nil
}

func (x *GetStatisticsResponse) GetAverageConfidence() float64 {
	if x != nil {
		return x.AverageConfidence
	}
	return 0
}

type NextDocumentNumberRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prefix        string                 `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
	Department    string                 `protobuf:"bytes,2,opt,name=department,proto3" json:"department,omitempty"`
	Year          int32                  `protobuf:"varint,3,opt,name=year,proto3" json:"year,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NextDocumentNumberRequest) Reset() {
	*x = NextDocumentNumberRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NextDocumentNumberRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextDocumentNumberRequest) ProtoMessage() {}

func (x *NextDocumentNumberRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextDocumentNumberRequest.ProtoReflect.Descriptor instead.
func (*NextDocumentNumberRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{9}
}

func (x *NextDocumentNumberRequest) GetPrefix() string {
	if x != nil {
		return x.Prefix
	}
	return ""
}

func (x *NextDocumentNumberRequest) GetDepartment() string {
	if x != nil {
		return x.Department
	}
	return ""
}

func (x *NextDocumentNumberRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

type NextDocumentNumberResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Number        string                 `protobuf:"bytes,1,opt,name=number,proto3" json:"number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *NextDocumentNumberResponse) Reset() {
	*x = NextDocumentNumberResponse{}
	mi := &file_arc_v1_arc_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *NextDocumentNumberResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*NextDocumentNumberResponse) ProtoMessage() {}

func (x *NextDocumentNumberResponse) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use NextDocumentNumberResponse.ProtoReflect.Descriptor instead.
func (*NextDocumentNumberResponse) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{10}
}

func (x *NextDocumentNumberResponse) GetNumber() string {
	if x != nil {
		return x.Number
	}
	return ""
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"` // 0 means the server default
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_arc_v1_arc_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{11}
}

func (x *ExportDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_arc_v1_arc_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{12}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Document struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId     string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename   string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	SourceType string                 `protobuf:"bytes,4,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	Status     string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Category   string                 `protobuf:"bytes,6,opt,name=category,proto3" json:"category,omitempty"`
	Confidence float64                `protobuf:"fixed64,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Method     string                 `protobuf:"bytes,8,opt,name=method,proto3" json:"method,omitempty"`
	Keywords   []string               `protobuf:"bytes,9,rep,name=keywords,proto3" json:"keywords,omitempty"`
	// Extracted template fields as a JSON object, empty when the category
	// has no template.
	ExtractedFieldsJson string `protobuf:"bytes,10,opt,name=extracted_fields_json,json=extractedFieldsJson,proto3" json:"extracted_fields_json,omitempty"`
	DocNumber           string `protobuf:"bytes,11,opt,name=doc_number,json=docNumber,proto3" json:"doc_number,omitempty"`
	StoragePath         string `protobuf:"bytes,12,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	// First 500 characters of the recognized text.
	OcrTextPreview string  `protobuf:"bytes,13,opt,name=ocr_text_preview,json=ocrTextPreview,proto3" json:"ocr_text_preview,omitempty"`
	OcrVariant     string  `protobuf:"bytes,14,opt,name=ocr_variant,json=ocrVariant,proto3" json:"ocr_variant,omitempty"`
	OcrParams      string  `protobuf:"bytes,15,opt,name=ocr_params,json=ocrParams,proto3" json:"ocr_params,omitempty"`
	OcrScore       float64 `protobuf:"fixed64,16,opt,name=ocr_score,json=ocrScore,proto3" json:"ocr_score,omitempty"`
	CreatedAt      string  `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	Error          string  `protobuf:"bytes,18,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_arc_v1_arc_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_arc_v1_arc_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_arc_v1_arc_proto_rawDescGZIP(), []int{13}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Document) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *Document) GetKeywords() []string {
	if x != nil {
		return x.Keywords
	}
	return nil
}

func (x *Document) GetExtractedFieldsJson() string {
	if x != nil {
		return x.ExtractedFieldsJson
	}
	return ""
}

func (x *Document) GetDocNumber() string {
	if x != nil {
		return x.DocNumber
	}
	return ""
}

func (x *Document) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Document) GetOcrTextPreview() string {
	if x != nil {
		return x.OcrTextPreview
	}
	return ""
}

func (x *Document) GetOcrVariant() string {
	if x != nil {
		return x.OcrVariant
	}
	return ""
}

func (x *Document) GetOcrParams() string {
	if x != nil {
		return x.OcrParams
	}
	return ""
}

func (x *Document) GetOcrScore() float64 {
	if x != nil {
		return x.OcrScore
	}
	return 0
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

var File_arc_v1_arc_proto protoreflect.FileDescriptor

const file_arc_v1_arc_proto_rawDesc = "" +
	"\n" +
	"\x10arc/v1/arc.proto\x12\x06arc.v1\"|\n" +
	"\x17ClassifyDocumentRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\"^\n" +
	"\x18ClassifyDocumentResponse\x12,\n" +
	"\bdocument\x18\x01 \x01(\v2\x10.arc.v1.DocumentR\bdocument\x12\x14\n" +
	"\x05error\x18\x02 \x01(\tR\x05error\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"E\n" +
	"\x14ListDocumentsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"G\n" +
	"\x15ListDocumentsResponse\x12.\n" +
	"\tdocuments\x18\x01 \x03(\v2\x10.arc.v1.DocumentR\tdocuments\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"2\n" +
	"\x16DeleteDocumentResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"/\n" +
	"\x14GetStatisticsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\xeb\x01\n" +
	"\x15GetStatisticsResponse\x12\x14\n" +
	"\x05total\x18\x01 \x01(\x05R\x05total\x12N\n" +
	"\vby_category\x18\x02 \x03(\v2-.arc.v1.GetStatisticsResponse.ByCategoryEntryR\n" +
	"byCategory\x12-\n" +
	"\x12average_confidence\x18\x03 \x01(\x01R\x11averageConfidence\x1a=\n" +
	"\x0fByCategoryEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"g\n" +
	"\x19NextDocumentNumberRequest\x12\x16\n" +
	"\x06prefix\x18\x01 \x01(\tR\x06prefix\x12\x1e\n" +
	"\n" +
	"department\x18\x02 \x01(\tR\n" +
	"department\x12\x12\n" +
	"\x04year\x18\x03 \x01(\x05R\x04year\"4\n" +
	"\x1aNextDocumentNumberResponse\x12\x16\n" +
	"\x06number\x18\x01 \x01(\tR\x06number\"G\n" +
	"\x16ExportDocumentsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xaa\x04\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x1f\n" +
	"\vsource_type\x18\x04 \x01(\tR\n" +
	"sourceType\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x06 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x01R\n" +
	"confidence\x12\x16\n" +
	"\x06method\x18\b \x01(\tR\x06method\x12\x1a\n" +
	"\bkeywords\x18\t \x03(\tR\bkeywords\x122\n" +
	"\x15extracted_fields_json\x18\n" +
	" \x01(\tR\x13extractedFieldsJson\x12\x1d\n" +
	"\n" +
	"doc_number\x18\v \x01(\tR\tdocNumber\x12!\n" +
	"\fstorage_path\x18\f \x01(\tR\vstoragePath\x12(\n" +
	"\x10ocr_text_preview\x18\r \x01(\tR\x0eocrTextPreview\x12\x1f\n" +
	"\vocr_variant\x18\x0e \x01(\tR\n" +
	"ocrVariant\x12\x1d\n" +
	"\n" +
	"ocr_params\x18\x0f \x01(\tR\tocrParams\x12\x1b\n" +
	"\tocr_score\x18\x10 \x01(\x01R\bocrScore\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\x12\x14\n" +
	"\x05error\x18\x12 \x01(\tR\x05error2\xc3\x04\n" +
	"\x0fDocumentService\x12U\n" +
	"\x10ClassifyDocument\x12\x1f.arc.v1.ClassifyDocumentRequest\x1a .arc.v1.ClassifyDocumentResponse\x12;\n" +
	"\vGetDocument\x12\x1a.arc.v1.GetDocumentRequest\x1a\x10.arc.v1.Document\x12L\n" +
	"\rListDocuments\x12\x1c.arc.v1.ListDocumentsRequest\x1a\x1d.arc.v1.ListDocumentsResponse\x12O\n" +
	"\x0eDeleteDocument\x12\x1d.arc.v1.DeleteDocumentRequest\x1a\x1e.arc.v1.DeleteDocumentResponse\x12L\n" +
	"\rGetStatistics\x12\x1c.arc.v1.GetStatisticsRequest\x1a\x1d.arc.v1.GetStatisticsResponse\x12[\n" +
	"\x12NextDocumentNumber\x12!.arc.v1.NextDocumentNumberRequest\x1a\".arc.v1.NextDocumentNumberResponse\x12R\n" +
	"\x0fExportDocuments\x12\x1e.arc.v1.ExportDocumentsRequest\x1a\x1f.arc.v1.ExportDocumentsResponseB9Z7github.com/jromarion/arc-classifier/gen/proto/arc/v1;v1b\x06proto3"

var (
	file_arc_v1_arc_proto_rawDescOnce sync.Once
	file_arc_v1_arc_proto_rawDescData []byte
)

func file_arc_v1_arc_proto_rawDescGZIP() []byte {
	file_arc_v1_arc_proto_rawDescOnce.Do(func() {
		file_arc_v1_arc_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_arc_v1_arc_proto_rawDesc), len(file_arc_v1_arc_proto_rawDesc)))
	})
	return file_arc_v1_arc_proto_rawDescData
}

var file_arc_v1_arc_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_arc_v1_arc_proto_goTypes = []any{
	(*ClassifyDocumentRequest)(nil),    // 0: arc.v1.ClassifyDocumentRequest
	(*ClassifyDocumentResponse)(nil),   // 1: arc.v1.ClassifyDocumentResponse
	(*GetDocumentRequest)(nil),         // 2: arc.v1.GetDocumentRequest
	(*ListDocumentsRequest)(nil),       // 3: arc.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 4: arc.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),      // 5: arc.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),     // 6: arc.v1.DeleteDocumentResponse
	(*GetStatisticsRequest)(nil),       // 7: arc.v1.GetStatisticsRequest
	(*GetStatisticsResponse)(nil),      // 8: arc.v1.GetStatisticsResponse
	(*NextDocumentNumberRequest)(nil),  // 9: arc.v1.NextDocumentNumberRequest
	(*NextDocumentNumberResponse)(nil), // 10: arc.v1.NextDocumentNumberResponse
	(*ExportDocumentsRequest)(nil),     // 11: arc.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil),    // 12: arc.v1.ExportDocumentsResponse
	(*Document)(nil),                   // 13: arc.v1.Document
	nil,                                // 14: arc.v1.GetStatisticsResponse.ByCategoryEntry
}
var file_arc_v1_arc_proto_depIdxs = []int32{
	13, // 0: arc.v1.ClassifyDocumentResponse.document:type_name -> arc.v1.Document
	13, // 1: arc.v1.ListDocumentsResponse.documents:type_name -> arc.v1.Document
	14, // 2: arc.v1.GetStatisticsResponse.by_category:type_name -> arc.v1.GetStatisticsResponse.ByCategoryEntry
	0,  // 3: arc.v1.DocumentService.ClassifyDocument:input_type -> arc.v1.ClassifyDocumentRequest
	2,  // 4: arc.v1.DocumentService.GetDocument:input_type -> arc.v1.GetDocumentRequest
	3,  // 5: arc.v1.DocumentService.ListDocuments:input_type -> arc.v1.ListDocumentsRequest
	5,  // 6: arc.v1.DocumentService.DeleteDocument:input_type -> arc.v1.DeleteDocumentRequest
	7,  // 7: arc.v1.DocumentService.GetStatistics:input_type -> arc.v1.GetStatisticsRequest
	9,  // 8: arc.v1.DocumentService.NextDocumentNumber:input_type -> arc.v1.NextDocumentNumberRequest
	11, // 9: arc.v1.DocumentService.ExportDocuments:input_type -> arc.v1.ExportDocumentsRequest
	1,  // 10: arc.v1.DocumentService.ClassifyDocument:output_type -> arc.v1.ClassifyDocumentResponse
	13, // 11: arc.v1.DocumentService.GetDocument:output_type -> arc.v1.Document
	4,  // 12: arc.v1.DocumentService.ListDocuments:output_type -> arc.v1.ListDocumentsResponse
	6,  // 13: arc.v1.DocumentService.DeleteDocument:output_type -> arc.v1.DeleteDocumentResponse
	8,  // 14: arc.v1.DocumentService.GetStatistics:output_type -> arc.v1.GetStatisticsResponse
	10, // 15: arc.v1.DocumentService.NextDocumentNumber:output_type -> arc.v1.NextDocumentNumberResponse
	12, // 16: arc.v1.DocumentService.ExportDocuments:output_type -> arc.v1.ExportDocumentsResponse
	10, // [10:17] is the sub-list for method output_type
	3,  // [3:10] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_arc_v1_arc_proto_init() }
func file_arc_v1_arc_proto_init() {
	if File_arc_v1_arc_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_arc_v1_arc_proto_rawDesc), len(file_arc_v1_arc_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_arc_v1_arc_proto_goTypes,
		DependencyIndexes: file_arc_v1_arc_proto_depIdxs,
		MessageInfos:      file_arc_v1_arc_proto_msgTypes,
	}.Build()
	File_arc_v1_arc_proto = out.File
	file_arc_v1_arc_proto_goTypes = nil
	file_arc_v1_arc_proto_depIdxs = nil
}
