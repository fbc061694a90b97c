// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipc

import (
	"encoding/binary"
	"io"

	"github.com/arrowfixtures/feather/arrow/bitutil"
	"github.com/arrowfixtures/feather/arrow/internal/flatbuf"
	"github.com/arrowfixtures/feather/arrow/memory"
	"golang.org/x/xerrors"
)

// kIPCContToken marks the start of an encapsulated message.
var kIPCContToken = []byte{0xFF, 0xFF, 0xFF, 0xFF}

// MessageType represents the type of Message in an Arrow format.
type MessageType flatbuf.MessageHeader

const (
	MessageNone            = MessageType(flatbuf.MessageHeaderNONE)
	MessageSchema          = MessageType(flatbuf.MessageHeaderSchema)
	MessageDictionaryBatch = MessageType(flatbuf.MessageHeaderDictionaryBatch)
	MessageRecordBatch     = MessageType(flatbuf.MessageHeaderRecordBatch)
	MessageTensor          = MessageType(flatbuf.MessageHeaderTensor)
	MessageSparseTensor    = MessageType(flatbuf.MessageHeaderSparseTensor)
)

func (m MessageType) String() string { return flatbuf.MessageHeader(m).String() }

// message is a decoded encapsulated message: its flatbuffer metadata and
// the body bytes that follow it.
type message struct {
	msg  *flatbuf.Message
	meta *memory.Buffer
	body *memory.Buffer
}

func newMessage(meta, body *memory.Buffer) *message {
	return &message{
		msg:  flatbuf.GetRootAsMessage(meta.Bytes(), 0),
		meta: meta,
		body: body,
	}
}

func (msg *message) Version() MetadataVersion { return MetadataVersion(msg.msg.Version()) }
func (msg *message) Type() MessageType        { return MessageType(msg.msg.HeaderType()) }
func (msg *message) BodyLen() int64           { return msg.msg.BodyLength() }

// writeMessage frames meta as an encapsulated message: continuation token,
// little-endian int32 length, the flatbuffer and zero padding up to a
// multiple of 8 bytes. It returns the number of bytes written.
func writeMessage(w io.Writer, meta []byte) (int32, error) {
	total := bitutil.PaddedLength(int64(len(meta))+8, 8)
	if total > 1<<31-1 {
		return 0, xerrors.Errorf("arrow/ipc: message metadata of %d bytes too large", len(meta))
	}

	var prefix [8]byte
	copy(prefix[:4], kIPCContToken)
	binary.LittleEndian.PutUint32(prefix[4:], uint32(total-8))
	if _, err := w.Write(prefix[:]); err != nil {
		return 0, xerrors.Errorf("arrow/ipc: could not write message prefix: %w", err)
	}
	if _, err := w.Write(meta); err != nil {
		return 0, xerrors.Errorf("arrow/ipc: could not write message metadata: %w", err)
	}
	if err := writePadding(w, total-8-int64(len(meta))); err != nil {
		return 0, err
	}
	return int32(total), nil
}

var paddingBytes [8]byte

func writePadding(w io.Writer, n int64) error {
	if n <= 0 {
		return nil
	}
	_, err := w.Write(paddingBytes[:n])
	if err != nil {
		return xerrors.Errorf("arrow/ipc: could not write padding: %w", err)
	}
	return nil
}
