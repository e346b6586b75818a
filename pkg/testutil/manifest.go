package testutil

// ManifestWithStaleBlocks declares two CustomIndex blocks, one with no
// members and one with three, around a CustomObject block.
const ManifestWithStaleBlocks = `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <name>CustomIndex</name>
    </types>
    <types>
        <members>Request__c</members>
        <members>Ticket__c</members>
        <name>CustomObject</name>
    </types>
    <types>
        <members>Request__c.Foo__c</members>
        <members>Request__c.Bar__c</members>
        <members>Ticket__c.Baz__c</members>
        <name>CustomIndex</name>
    </types>
    <version>58.0</version>
</Package>
`

// ManifestWithStaleBlocksPruned is ManifestWithStaleBlocks after removing
// the CustomIndex blocks.
const ManifestWithStaleBlocksPruned = `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Request__c</members>
        <members>Ticket__c</members>
        <name>CustomObject</name>
    </types>
    <version>58.0</version>
</Package>
`

// ManifestWithoutStaleBlocks declares no CustomIndex blocks.
const ManifestWithoutStaleBlocks = `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Request__c</members>
        <name>CustomObject</name>
    </types>
    <types>
        <members>RequestService</members>
        <name>ApexClass</name>
    </types>
    <version>58.0</version>
</Package>
`

// RequestPackageManifest is the manifest of the Request__c rename scenario:
// one CustomIndex block with one member and one CustomObject block.
const RequestPackageManifest = `<?xml version="1.0" encoding="UTF-8"?>
<Package xmlns="http://soap.sforce.com/2006/04/metadata">
    <types>
        <members>Request__c.Foo__c</members>
        <name>CustomIndex</name>
    </types>
    <types>
        <members>Request__c</members>
        <name>CustomObject</name>
    </types>
    <version>58.0</version>
</Package>
`

// RequestObjectMeta is a minimal object definition for Request__c.
const RequestObjectMeta = `<?xml version="1.0" encoding="UTF-8"?>
<CustomObject xmlns="http://soap.sforce.com/2006/04/metadata">
    <label>Request</label>
    <fullName>Request__c</fullName>
</CustomObject>
`
